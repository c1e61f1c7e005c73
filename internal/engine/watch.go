package engine

// watch.go - Live re-rendering when the matrix file changes

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch renders the matrix once, then re-renders whenever the file is
// written. Render failures are logged and watching continues; the loop
// exits when ctx is cancelled.
func (e *Engine) Watch(ctx context.Context, matrixPath, outDir, kind string) error {
	abs, err := filepath.Abs(matrixPath)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", matrixPath, err)
	}

	render := func() {
		report, err := e.RenderFile(ctx, abs, outDir, kind)
		if err != nil {
			e.logger.Error("render failed", "path", abs, "error", err)
			return
		}
		e.logger.Info("report refreshed", "output", report.OutputPath, "pages", report.Pages)
	}

	// Initial render; failures are reported but do not stop the watch.
	render()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: editors often replace
	// the file on save, which would drop a direct watch.
	dir := filepath.Dir(abs)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	e.logger.Info("watching for changes", "path", abs)

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(abs) {
				continue
			}

			// Debounce: editors fire several events per save.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, render)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Error("watcher error", "error", err)
		}
	}
}
