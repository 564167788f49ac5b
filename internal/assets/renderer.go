package assets

import (
	"bytes"
	"fmt"
	"html/template"
	"maps"
	"sync"
	"time"

	"github.com/alnah/go-blogmark/internal/blog"
	"github.com/alnah/go-blogmark/internal/dateutil"
)

// TemplateDocument wraps a rendered fragment into a standalone page.
const TemplateDocument = "document"

// TemplateRenderer renders named templates with html/template. Templates
// are loaded and parsed on first use and cached; it is safe for
// concurrent use.
type TemplateRenderer struct {
	loader AssetLoader
	funcs  template.FuncMap

	mu    sync.Mutex
	cache map[string]*template.Template
}

// NewTemplateRenderer creates a renderer reading templates from loader,
// or from Builtin when loader is nil. Entries in funcs
// replace the built-in template functions of the same name:
//
//   - format_date TIME PATTERN LANG: localized date, "" on error
//   - lang BLOG POST: the post's language, else the blog's
//   - markdown TEXT: the text itself, escaped as plain text
func NewTemplateRenderer(loader AssetLoader, funcs template.FuncMap) *TemplateRenderer {
	if loader == nil {
		loader = Builtin
	}
	merged := template.FuncMap{
		"format_date": formatDate,
		"lang":        effectiveLang,
		"markdown":    func(s string) string { return s },
	}
	maps.Copy(merged, funcs)

	return &TemplateRenderer{
		loader: loader,
		funcs:  merged,
		cache:  make(map[string]*template.Template),
	}
}

// Render executes the named template with data.
// Returns ErrTemplateNotFound, ErrTemplateParse or ErrTemplateRender.
func (r *TemplateRenderer) Render(name string, data map[string]any) (string, error) {
	tmpl, err := r.template(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, name, err)
	}
	return buf.String(), nil
}

func (r *TemplateRenderer) template(name string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}

	src, err := r.loader.LoadTemplate(name)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(name).Funcs(r.funcs).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}

	r.cache[name] = tmpl
	return tmpl, nil
}

func formatDate(t time.Time, pattern, lang string) string {
	out, err := dateutil.FormatDate(t, pattern, lang)
	if err != nil {
		return ""
	}
	return out
}

func effectiveLang(b *blog.Blog, p *blog.Post) string {
	return blog.RenderContext{Blog: b, Post: p}.Lang()
}
