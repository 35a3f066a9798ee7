package animations

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ClipSpec describes one animation clip of a sprite sheet as declared
// in clips.yaml. Frames are laid out left to right in the sheet.
type ClipSpec struct {
	Frames int     `yaml:"frames"`
	Speed  float32 `yaml:"speed"` // ticks per frame
	Freeze bool    `yaml:"freeze,omitempty"`
}

// Library holds the clip definitions for every sprite sheet, keyed by
// sheet name and then clip name.
type Library struct {
	sheets map[string]map[string]ClipSpec
}

func ParseLibrary(data []byte) (*Library, error) {
	sheets := make(map[string]map[string]ClipSpec)
	if err := yaml.Unmarshal(data, &sheets); err != nil {
		return nil, fmt.Errorf("parsing clip definitions: %w", err)
	}
	for sheet, clips := range sheets {
		for name, spec := range clips {
			if spec.Frames <= 0 {
				return nil, fmt.Errorf("clip %s/%s: frames must be positive, got %d", sheet, name, spec.Frames)
			}
			if spec.Speed <= 0 {
				return nil, fmt.Errorf("clip %s/%s: speed must be positive, got %g", sheet, name, spec.Speed)
			}
		}
	}
	return &Library{sheets: sheets}, nil
}

func (l *Library) Clip(sheet, name string) (ClipSpec, bool) {
	clips, ok := l.sheets[sheet]
	if !ok {
		return ClipSpec{}, false
	}
	spec, ok := clips[name]
	return spec, ok
}

// NewAnimation builds a fresh playback cursor for the named clip.
// It returns nil if the clip is not defined for the sheet.
func (l *Library) NewAnimation(sheet, name string) *Animation {
	spec, ok := l.Clip(sheet, name)
	if !ok {
		return nil
	}
	return NewAnimation(0, spec.Frames-1, spec.Speed, spec.Freeze)
}

// Replace swaps the library contents in place so that holders of the
// pointer observe the update. Used by the dev mode clip watcher.
func (l *Library) Replace(other *Library) {
	l.sheets = other.sheets
}
