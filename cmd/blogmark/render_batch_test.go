package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alnah/go-blogmark"
	"github.com/alnah/go-blogmark/internal/config"
)

// fakeRenderer wraps content in a paragraph and records contexts.
type fakeRenderer struct {
	mu       sync.Mutex
	contexts []blogmark.RenderContext
	empty    bool
}

func (f *fakeRenderer) Markdown(_ context.Context, content string, rc blogmark.RenderContext) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contexts = append(f.contexts, rc)
	if f.empty {
		return ""
	}
	return "<p>" + strings.TrimSpace(content) + "</p>"
}

func (f *fakeRenderer) Standalone(_ context.Context, fragment, title, lang string) (string, error) {
	return fmt.Sprintf("<html lang=%q><title>%s</title>%s</html>", lang, title, fragment), nil
}

func testSite(t *testing.T) *config.Site {
	t.Helper()
	site, err := config.LoadSite(writeFile(t, t.TempDir(), "site.yaml", testSiteYAML))
	if err != nil {
		t.Fatalf("LoadSite() error = %v", err)
	}
	return site
}

// ---------------------------------------------------------------------------
// TestRenderBatch - Concurrent rendering
// ---------------------------------------------------------------------------

func TestRenderBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var files []FileToRender
	for i := range 5 {
		in := writeFile(t, dir, fmt.Sprintf("p%d.md", i), fmt.Sprintf("post %d", i))
		files = append(files, FileToRender{InputPath: in, OutputPath: filepath.Join(dir, "out", fmt.Sprintf("p%d.html", i))})
	}

	results := renderBatch(context.Background(), &fakeRenderer{}, files, &renderParams{workers: 2})

	if len(results) != len(files) {
		t.Fatalf("renderBatch() returned %d results, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("result %d error = %v", i, r.Err)
			continue
		}
		if r.InputPath != files[i].InputPath {
			t.Errorf("result %d input = %q, want %q", i, r.InputPath, files[i].InputPath)
		}
		want := fmt.Sprintf("<p>post %d</p>", i)
		if got := readFile(t, r.OutputPath); got != want {
			t.Errorf("output %d = %q, want %q", i, got, want)
		}
	}
}

func TestRenderBatch_Empty(t *testing.T) {
	t.Parallel()

	if got := renderBatch(context.Background(), &fakeRenderer{}, nil, &renderParams{}); got != nil {
		t.Errorf("renderBatch(nil) = %v, want nil", got)
	}
}

func TestRenderBatch_CancelledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []FileToRender{
		{InputPath: writeFile(t, dir, "a.md", "a"), OutputPath: filepath.Join(dir, "a.html")},
		{InputPath: writeFile(t, dir, "b.md", "b"), OutputPath: filepath.Join(dir, "b.html")},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, r := range renderBatch(ctx, &fakeRenderer{}, files, &renderParams{}) {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("result for %s error = %v, want context.Canceled", r.InputPath, r.Err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRenderFile - Single file outcomes
// ---------------------------------------------------------------------------

func TestRenderFile_Contexts(t *testing.T) {
	t.Parallel()

	site := testSite(t)
	second, err := site.Context("second")
	if err != nil {
		t.Fatalf("Context() error = %v", err)
	}

	tests := []struct {
		name      string
		content   string
		params    *renderParams
		wantBlog  bool
		wantTitle string
	}{
		{
			name:    "no site no front matter",
			content: "body",
			params:  &renderParams{},
		},
		{
			name:      "front matter without site",
			content:   "---\ntitle: Loose\n---\nbody",
			params:    &renderParams{},
			wantTitle: "Loose",
		},
		{
			name:      "front matter within site",
			content:   "---\ntitle: Mine\n---\nbody",
			params:    &renderParams{site: site},
			wantBlog:  true,
			wantTitle: "Mine",
		},
		{
			name:      "post flag wins over front matter",
			content:   "---\ntitle: Mine\n---\nbody",
			params:    &renderParams{site: site, post: &second},
			wantBlog:  true,
			wantTitle: "Second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			f := FileToRender{InputPath: writeFile(t, dir, "in.md", tt.content), OutputPath: filepath.Join(dir, "in.html")}
			r := &fakeRenderer{}

			if res := renderFile(context.Background(), r, f, tt.params); res.Err != nil {
				t.Fatalf("renderFile() error = %v", res.Err)
			}
			if got := readFile(t, f.OutputPath); got != "<p>body</p>" {
				t.Errorf("output = %q, want front matter stripped", got)
			}

			rc := r.contexts[0]
			if (rc.Blog != nil) != tt.wantBlog {
				t.Errorf("Blog present = %v, want %v", rc.Blog != nil, tt.wantBlog)
			}
			gotTitle := ""
			if rc.Post != nil {
				gotTitle = rc.Post.Title
			}
			if gotTitle != tt.wantTitle {
				t.Errorf("Post title = %q, want %q", gotTitle, tt.wantTitle)
			}
		})
	}
}

func TestRenderFile_Standalone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantLang  string
	}{
		{"title from front matter", "---\ntitle: Hello\nlang: fr\n---\nx", "Hello", "fr"},
		{"title from file name", "x", "my-post", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			f := FileToRender{InputPath: writeFile(t, dir, "my-post.md", tt.content), OutputPath: filepath.Join(dir, "my-post.html")}

			res := renderFile(context.Background(), &fakeRenderer{}, f, &renderParams{standalone: true})
			if res.Err != nil {
				t.Fatalf("renderFile() error = %v", res.Err)
			}
			want := fmt.Sprintf("<html lang=%q><title>%s</title><p>x</p></html>", tt.wantLang, tt.wantTitle)
			if got := readFile(t, f.OutputPath); got != want {
				t.Errorf("output = %q, want %q", got, want)
			}
		})
	}
}

func TestRenderFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := writeFile(t, dir, "blocker", "")

	tests := []struct {
		name     string
		file     FileToRender
		renderer *fakeRenderer
		wantErr  error
	}{
		{
			name:     "missing input",
			file:     FileToRender{InputPath: filepath.Join(dir, "absent.md"), OutputPath: filepath.Join(dir, "absent.html")},
			renderer: &fakeRenderer{},
			wantErr:  ErrReadInput,
		},
		{
			name:     "bad front matter",
			file:     FileToRender{InputPath: writeFile(t, dir, "fm.md", "---\ntitle: x\n"), OutputPath: filepath.Join(dir, "fm.html")},
			renderer: &fakeRenderer{},
			wantErr:  ErrFrontMatter,
		},
		{
			name:     "degraded output",
			file:     FileToRender{InputPath: writeFile(t, dir, "e.md", "text"), OutputPath: filepath.Join(dir, "e.html")},
			renderer: &fakeRenderer{empty: true},
			wantErr:  ErrRenderFailed,
		},
		{
			name:     "unwritable output",
			file:     FileToRender{InputPath: writeFile(t, dir, "w.md", "text"), OutputPath: filepath.Join(blocker, "w.html")},
			renderer: &fakeRenderer{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := renderFile(context.Background(), tt.renderer, tt.file, &renderParams{})
			if res.Err == nil {
				t.Fatal("renderFile() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(res.Err, tt.wantErr) {
				t.Errorf("renderFile() error = %v, want %v", res.Err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults - Reporting
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []RenderResult{
		{InputPath: "a.md", OutputPath: "a.html"},
		{InputPath: "b.md", Err: ErrReadInput},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		skipStdout []string
	}{
		{
			name:       "default",
			wantStdout: []string{"Created a.html", "1 succeeded, 1 failed"},
		},
		{
			name:       "verbose",
			verbose:    true,
			wantStdout: []string{"a.md -> a.html"},
		},
		{
			name:       "quiet",
			quiet:      true,
			skipStdout: []string{"Created", "succeeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("")
			if failed := printResults(results, tt.quiet, tt.verbose, env); failed != 1 {
				t.Errorf("printResults() = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED b.md") {
				t.Errorf("stderr = %q, want failure reported", stderr.String())
			}
			for _, s := range tt.wantStdout {
				if !strings.Contains(stdout.String(), s) {
					t.Errorf("stdout = %q, want %q", stdout.String(), s)
				}
			}
			for _, s := range tt.skipStdout {
				if strings.Contains(stdout.String(), s) {
					t.Errorf("stdout = %q, should not contain %q", stdout.String(), s)
				}
			}
		})
	}
}
