package assets

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/automata-games/tilerun/assets/animations"
)

// ClipWatcher reloads clip definitions from disk when the file changes.
// Dev mode only; release builds use the embedded clips.yaml.
type ClipWatcher struct {
	watcher *fsnotify.Watcher
	lib     *animations.Library
	dir     string
	closeCh chan struct{}
	once    sync.Once
}

// WatchClips watches dir for changes to yaml files and swaps the
// library contents in place when one parses successfully. Reloaded
// clips take effect on the next animation restart.
func WatchClips(dir string, lib *animations.Library) (*ClipWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	cw := &ClipWatcher{
		watcher: w,
		lib:     lib,
		dir:     dir,
		closeCh: make(chan struct{}),
	}
	go cw.run()
	return cw, nil
}

func (cw *ClipWatcher) Close() error {
	var err error
	cw.once.Do(func() {
		close(cw.closeCh)
		err = cw.watcher.Close()
	})
	return err
}

func (cw *ClipWatcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isClipFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			cw.reload(event.Name)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("clip watcher: %v", err)
		case <-cw.closeCh:
			return
		}
	}
}

func (cw *ClipWatcher) reload(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("clip watcher: reading %s: %v", path, err)
		return
	}
	fresh, err := animations.ParseLibrary(data)
	if err != nil {
		// Keep the previous library on parse errors so a half-saved
		// file does not break running animations.
		log.Printf("clip watcher: %v", err)
		return
	}
	cw.lib.Replace(fresh)
	log.Printf("clip watcher: reloaded %s", path)
}

func isClipFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
