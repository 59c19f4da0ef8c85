package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangedMsg reports that the backing file was modified on disk, typically
// by another running instance.
type ChangedMsg struct {
	Path string
}

const (
	watchSettle  = 100 * time.Millisecond
	watchMaxWait = 500 * time.Millisecond
)

// Watch calls onChange whenever the file behind s changes, coalescing bursts
// of events. A steady stream of writes still reports at least once per
// watchMaxWait. It blocks until ctx is done. Stores without a backing file
// return immediately.
func Watch(ctx context.Context, s Store, onChange func(ChangedMsg)) error {
	path := s.Path()
	if path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Writes replace the file by rename, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	base := filepath.Base(path)

	settle := time.NewTimer(watchSettle)
	if !settle.Stop() {
		<-settle.C
	}
	pending := false
	var firstPending time.Time

	for {
		select {
		case <-ctx.Done():
			settle.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, base) {
				continue
			}
			if !pending {
				pending = true
				firstPending = time.Now()
			}
			settle.Reset(settleDelay(time.Since(firstPending)))

		case <-settle.C:
			if pending {
				pending = false
				onChange(ChangedMsg{Path: path})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch store: %w", err)
		}
	}
}

// settleDelay is the quiet period to wait after an event, shortened so the
// report lands no later than watchMaxWait after the first pending event.
func settleDelay(elapsed time.Duration) time.Duration {
	remaining := watchMaxWait - elapsed
	if remaining < 0 {
		return 0
	}
	return min(watchSettle, remaining)
}

func relevant(event fsnotify.Event, base string) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return relevantName(event.Name, base)
}

func relevantName(path, base string) bool {
	name := filepath.Base(path)
	// SQLite journals alongside the database (-wal, -journal).
	return name == base || strings.HasPrefix(name, base+"-")
}
