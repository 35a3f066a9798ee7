package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"

	"github.com/automata-games/tilerun/assets/animations"
	"github.com/automata-games/tilerun/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS

	//go:embed clips/clips.yaml
	clipsData []byte
)

type spriteLoader struct {
	cache map[string]*ebiten.Image
}

var sprites = &spriteLoader{cache: make(map[string]*ebiten.Image)}

func (l *spriteLoader) mustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetSheet returns the sprite strip for one clip of a sheet, e.g.
// images/spritesheets/player/run.png for GetSheet("player", "run").
func GetSheet(sheet, clip string) *ebiten.Image {
	path := fmt.Sprintf("images/spritesheets/%s/%s.png", sheet, clip)
	return sprites.mustLoadImage(path)
}

// MustLoadClips parses the embedded clip definitions. Dev mode can
// later swap the contents via the clip watcher.
func MustLoadClips() *animations.Library {
	lib, err := animations.ParseLibrary(clipsData)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse embedded clips.yaml: %v", err))
	}
	return lib
}

// LoadedLevel couples the parsed level with its prerendered backdrop.
// The backdrop holds every tile layer so the renderer only has to
// repaint cells the simulation has changed.
type LoadedLevel struct {
	Level      *leveldata.Level
	Background *ebiten.Image
	Tiles      *ebiten.Image // tileset strip for repainting changed cells
}

func MustLoadLevels() []*LoadedLevel {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []*LoadedLevel
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levels = append(levels, MustLoadLevel(filepath.Join("levels", entry.Name())))
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func MustLoadLevel(levelPath string) *LoadedLevel {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", levelPath, err))
	}

	level, err := leveldata.FromMap(levelMap, levelPath)
	if err != nil {
		panic(err)
	}

	return &LoadedLevel{
		Level:      level,
		Background: renderBackground(levelMap),
		Tiles:      sprites.mustLoadImage("images/tiles.png"),
	}
}

func renderBackground(levelMap *tiled.Map) *ebiten.Image {
	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(levelMap, levelFS)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}

	for i, layer := range levelMap.Layers {
		if !layer.Visible {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			fmt.Printf("Warning: Failed to render layer %d: %v\n", i, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return background
}
