package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-blogmark/internal/hints"
)

// defaultDebounce groups the bursts of events editors emit on save.
const defaultDebounce = 100 * time.Millisecond

// ErrWatch indicates the file watcher could not start.
var ErrWatch = errors.New("file watcher failed")

// watchOptions configures watchFiles.
type watchOptions struct {
	InputPath string // markdown file or directory
	OutputDir string // empty = next to each input
	Render    func([]FileToRender)
	Logger    *slog.Logger
	Debounce  time.Duration // 0 = defaultDebounce
	Ready     func()        // called once the watches are in place
}

// watchFiles re-renders markdown files under opts.InputPath when they are
// written or created, until ctx is canceled.
func watchFiles(ctx context.Context, opts watchOptions) error {
	info, err := os.Stat(opts.InputPath)
	if err != nil {
		return err
	}
	single := !info.IsDir()
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrWatch, err, hints.ForWatch())
	}
	defer w.Close()

	if single {
		err = w.Add(filepath.Dir(opts.InputPath))
	} else {
		err = addTree(w, opts.InputPath)
	}
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrWatch, err, hints.ForWatch())
	}

	if opts.Ready != nil {
		opts.Ready()
	}

	pending := make(map[string]bool)
	var flush <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !single && ev.Has(fsnotify.Create) && isDir(ev.Name) {
				if err := addTree(w, ev.Name); err != nil {
					opts.Logger.Warn("watching new directory failed", "dir", ev.Name, "err", err)
				}
				continue
			}
			if !watched(ev.Name, opts.InputPath, single) {
				continue
			}
			pending[ev.Name] = true
			flush = time.After(opts.Debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			opts.Logger.Warn("file watcher error", "err", err)

		case <-flush:
			flush = nil
			files := pendingFiles(pending, opts, single)
			clear(pending)
			if len(files) > 0 {
				opts.Render(files)
			}
		}
	}
}

// pendingFiles turns changed paths into render jobs, in path order.
// Paths removed since their event are dropped.
func pendingFiles(pending map[string]bool, opts watchOptions, single bool) []FileToRender {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	base := opts.InputPath
	if single {
		base = ""
	}

	files := make([]FileToRender, 0, len(paths))
	for _, p := range paths {
		if info, err := os.Stat(p); err != nil || info.IsDir() {
			continue
		}
		out, err := resolveOutputPath(p, opts.OutputDir, base)
		if err != nil {
			opts.Logger.Warn("resolving output path failed", "file", p, "err", err)
			continue
		}
		files = append(files, FileToRender{InputPath: p, OutputPath: out})
	}
	return files
}

// watched reports whether an event path is a render input.
func watched(path, inputPath string, single bool) bool {
	if single {
		return filepath.Clean(path) == filepath.Clean(inputPath)
	}
	return isMarkdown(path)
}

// addTree watches root and its subdirectories, skipping hidden ones.
func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
