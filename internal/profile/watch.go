package profile

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// debounceDelay coalesces editor write bursts into one reload signal.
const debounceDelay = 250 * time.Millisecond

// Watch signals on the returned channel whenever the profile file
// changes. The parent directory is watched so atomic-rename saves are
// seen too. The channel closes when ctx is done.
func Watch(ctx context.Context, path string, log hclog.Logger) (<-chan struct{}, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	base := filepath.Base(path)
	out := make(chan struct{}, 1)

	var mu sync.Mutex
	var pending *time.Timer

	go func() {
		defer close(out)
		defer fsWatcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-fsWatcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				mu.Lock()
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(debounceDelay, func() {
					select {
					case out <- struct{}{}:
					default: // a reload is already queued
					}
				})
				mu.Unlock()
			case err, ok := <-fsWatcher.Errors:
				if !ok {
					return
				}
				log.Debug("profile watch error", "error", err)
			}
		}
	}()

	return out, nil
}
