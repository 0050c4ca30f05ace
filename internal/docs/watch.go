package docs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces bursts of filesystem events (editors often fire
// several per save) into one rebuild.
const debounceWindow = 200 * time.Millisecond

// Watch rebuilds the document set whenever a file matching patterns changes
// under root. Rebuilds run serially in this goroutine; the function returns
// when ctx is cancelled or the watcher fails. onRebuild, when non-nil, is
// called after each successful rebuild with the written paths.
func Watch(ctx context.Context, root string, patterns []string, outputDir string, onRebuild func([]string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch every directory under root; fsnotify does not recurse.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}

	rebuild := func() error {
		assembler, err := ScanDir(root, patterns)
		if err != nil {
			return err
		}
		written, err := assembler.WriteDocs(outputDir)
		if err != nil {
			return err
		}
		if onRebuild != nil {
			onRebuild(written)
		}
		return nil
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && isDirectory(event.Name) {
				// New directories need explicit watches; files are covered
				// by their parent's watch.
				_ = watcher.Add(event.Name)
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			rel, err := filepath.Rel(root, event.Name)
			if err != nil || !matchesAny(filepath.ToSlash(rel), patterns) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			if err := rebuild(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher: %w", err)
		}
	}
}

// isDirectory reports whether path exists and is a directory.
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
