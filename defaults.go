package blogmark

import (
	"context"
	"html/template"
	"sync"

	"github.com/alnah/go-blogmark/internal/excerpt"
	"github.com/alnah/go-blogmark/internal/sanitize"
)

// defaultRenderer backs the package-level functions.
var defaultRenderer = sync.OnceValue(func() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		// Only embedded assets are involved; failing here is a build defect.
		panic("blogmark: default renderer: " + err.Error())
	}
	return r
})

// Markdown renders content with the default renderer.
func Markdown(ctx context.Context, content string, rc RenderContext) string {
	return defaultRenderer().Markdown(ctx, content, rc)
}

// MarkdownValue renders v with the default renderer when it carries text.
func MarkdownValue(ctx context.Context, v any, rc RenderContext) string {
	return defaultRenderer().MarkdownValue(ctx, v, rc)
}

// Clean restricts markup to the default sanitizer allow-list.
func Clean(markup string) string {
	return sanitize.Clean(markup)
}

// Unmark extracts a plain-text excerpt of at most 400 characters plus an
// ellipsis from Markdown content.
func Unmark(content string) string {
	return excerpt.Unmark(content)
}

// FuncMap returns the default renderer's template functions under rc.
func FuncMap(rc RenderContext) template.FuncMap {
	return defaultRenderer().FuncMap(rc)
}
