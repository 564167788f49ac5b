package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// startWatch runs watchFiles in the background and returns a channel of
// render batches plus the watcher's exit error channel.
func startWatch(t *testing.T, ctx context.Context, input, outputDir string) (<-chan []FileToRender, <-chan error) {
	t.Helper()

	batches := make(chan []FileToRender, 8)
	done := make(chan error, 1)
	ready := make(chan struct{})

	go func() {
		done <- watchFiles(ctx, watchOptions{
			InputPath: input,
			OutputDir: outputDir,
			Render:    func(files []FileToRender) { batches <- files },
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
			Debounce:  20 * time.Millisecond,
			Ready:     func() { close(ready) },
		})
	}()

	select {
	case <-ready:
	case err := <-done:
		t.Fatalf("watchFiles() returned early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher not ready")
	}
	return batches, done
}

func waitBatch(t *testing.T, batches <-chan []FileToRender) []FileToRender {
	t.Helper()
	select {
	case files := <-batches:
		return files
	case <-time.After(5 * time.Second):
		t.Fatal("no render after change")
		return nil
	}
}

func TestWatchFiles_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.md", "a")
	out := filepath.Join(t.TempDir(), "out")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches, done := startWatch(t, ctx, dir, out)

	// Non-markdown writes are ignored; the markdown write triggers a render.
	writeFile(t, dir, "notes.txt", "ignored")
	changed := writeFile(t, dir, "a.md", "changed")

	files := waitBatch(t, batches)
	if len(files) != 1 {
		t.Fatalf("rendered %v, want only a.md", files)
	}
	if files[0].InputPath != changed || files[0].OutputPath != filepath.Join(out, "a.html") {
		t.Errorf("rendered %+v, want %s -> %s", files[0], changed, filepath.Join(out, "a.html"))
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchFiles() error = %v, want nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchFiles() did not stop after cancel")
	}
}

func TestWatchFiles_NewSubdirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches, _ := startWatch(t, ctx, dir, "")

	sub := filepath.Join(dir, "2025")
	if err := os.Mkdir(sub, 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	// Give the watcher time to register the new directory.
	time.Sleep(200 * time.Millisecond)
	created := writeFile(t, sub, "new.md", "new")

	for {
		files := waitBatch(t, batches)
		for _, f := range files {
			if f.InputPath == created {
				if want := filepath.Join(sub, "new.html"); f.OutputPath != want {
					t.Errorf("OutputPath = %q, want %q", f.OutputPath, want)
				}
				return
			}
		}
	}
}

func TestWatchFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeFile(t, dir, "post.md", "v1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	batches, _ := startWatch(t, ctx, input, "")

	writeFile(t, dir, "other.md", "sibling")
	writeFile(t, dir, "post.md", "v2")

	files := waitBatch(t, batches)
	for _, f := range files {
		if f.InputPath != input {
			t.Errorf("rendered %s, want only %s", f.InputPath, input)
		}
	}
}

func TestWatchFiles_MissingInput(t *testing.T) {
	t.Parallel()

	err := watchFiles(context.Background(), watchOptions{
		InputPath: filepath.Join(t.TempDir(), "absent"),
		Render:    func([]FileToRender) {},
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("watchFiles() error = %v, want os.ErrNotExist", err)
	}
}

func TestWatched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, input string
		single      bool
		want        bool
	}{
		{"dir/a.md", "dir", false, true},
		{"dir/a.markdown", "dir", false, true},
		{"dir/a.html", "dir", false, false},
		{"dir/.blogmark-1.tmp", "dir", false, false},
		{"dir/post.md", "dir/post.md", true, true},
		{"dir/./post.md", "dir/post.md", true, true},
		{"dir/other.md", "dir/post.md", true, false},
	}

	for _, tt := range tests {
		if got := watched(tt.path, tt.input, tt.single); got != tt.want {
			t.Errorf("watched(%q, %q, %v) = %v, want %v", tt.path, tt.input, tt.single, got, tt.want)
		}
	}
}
