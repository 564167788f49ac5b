package blogmark

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-blogmark/internal/assets"
	"github.com/alnah/go-blogmark/internal/excerpt"
	"github.com/alnah/go-blogmark/internal/fileutil"
	"github.com/alnah/go-blogmark/internal/hooks"
	"github.com/alnah/go-blogmark/internal/macro"
	"github.com/alnah/go-blogmark/internal/pipeline"
	"github.com/alnah/go-blogmark/internal/sanitize"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.BlogPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ hooks.Set                     = (*hooks.Default)(nil)
	_ macro.Resolver                = (*macro.BlogResolver)(nil)
	_ macro.ListingRenderer         = (*assets.TemplateRenderer)(nil)
)

// Renderer turns blog Markdown into HTML fragments.
// Create with NewRenderer; a Renderer is safe for concurrent use.
type Renderer struct {
	cfg           rendererConfig
	logger        *slog.Logger
	assetLoader   assets.AssetLoader
	hooks         hooks.Set
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	resolver      macro.Resolver
	listings      macro.ListingRenderer
	templates     *assets.TemplateRenderer
	policy        *sanitize.Policy
	pageCSS       string
}

// NewRenderer creates a Renderer with default configuration.
// Returns error if the asset path, the highlight style or the page style
// cannot be resolved.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			timeout:        defaultTimeout,
			highlightStyle: hooks.DefaultStyle,
			now:            time.Now,
		},
		logger:       slog.Default(),
		preprocessor: &pipeline.BlogPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(r)
	}

	// WithAssetPath layers a theme directory over the built-in assets
	if r.assetLoader == nil {
		loader, err := assets.NewLoader(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.assetLoader = loader
	}

	if _, ok := styles.Registry[r.cfg.highlightStyle]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, r.cfg.highlightStyle)
	}

	if err := r.resolvePageStyle(); err != nil {
		return nil, err
	}

	if r.hooks == nil {
		r.hooks = hooks.NewDefault(hooks.WithLogger(r.logger), hooks.WithStyle(r.cfg.highlightStyle))
	}
	if r.htmlConverter == nil {
		r.htmlConverter = pipeline.NewGoldmarkConverter(r.hooks, r.logger)
	}

	if len(r.cfg.embedHosts) > 0 {
		r.policy = sanitize.NewPolicy(r.cfg.embedHosts...)
	} else {
		r.policy = sanitize.Default
	}

	// Post content inside a listing renders without blog context so a
	// {{ posts }} directive in a listed post cannot recurse.
	r.templates = assets.NewTemplateRenderer(r.assetLoader, template.FuncMap{
		"markdown": func(content string) template.HTML {
			return template.HTML(r.Markdown(context.Background(), content, RenderContext{})) // #nosec G203 -- rendered by this pipeline
		},
	})
	if r.listings == nil {
		r.listings = r.templates
	}
	if r.resolver == nil {
		r.resolver = macro.NewBlogResolver(r.listings,
			macro.WithClock(r.cfg.now),
			macro.WithLogger(r.logger),
		)
	}

	return r, nil
}

// Markdown renders content to an HTML fragment under rc. Problems never
// surface as errors: a failed conversion yields "" and is logged.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Markdown(ctx context.Context, content string, rc RenderContext) (out string) {
	defer func() {
		if v := recover(); v != nil {
			r.logger.Error("markdown rendering panicked", "panic", v)
			out = ""
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, r.cfg.timeout)
	defer cancel()

	mdContent := r.preprocessor.PreprocessMarkdown(ctx, content)
	if ctx.Err() != nil {
		r.logger.Warn("markdown rendering cancelled", "err", ctx.Err())
		return ""
	}

	htmlContent, err := r.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		r.logger.Warn("markdown conversion failed", "err", err)
		return ""
	}

	htmlContent = macro.ExcludingVerbatim(htmlContent, rc, r.resolver)

	if r.cfg.autoSanitize {
		htmlContent = r.policy.Clean(htmlContent)
	}
	return htmlContent
}

// MarkdownValue renders v like Markdown when it carries text: a string,
// a []byte, a template.HTML or a fmt.Stringer. Any other value yields "".
func (r *Renderer) MarkdownValue(ctx context.Context, v any, rc RenderContext) string {
	content, ok := textOf(v)
	if !ok {
		return ""
	}
	return r.Markdown(ctx, content, rc)
}

// Clean restricts markup to the renderer's sanitizer allow-list.
func (r *Renderer) Clean(markup string) string {
	return r.policy.Clean(markup)
}

// Unmark extracts a plain-text excerpt from Markdown content.
func (r *Renderer) Unmark(content string) string {
	return excerpt.Unmark(content)
}

// Standalone wraps a rendered fragment into a complete HTML page carrying
// the page stylesheet and the code highlighting stylesheet.
func (r *Renderer) Standalone(ctx context.Context, fragment, title, lang string) (string, error) {
	page, err := r.templates.Render(assets.TemplateDocument, map[string]any{
		"title": title,
		"lang":  lang,
		"body":  template.HTML(fragment), // #nosec G203 -- fragment is rendered output
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStandalone, err)
	}

	highlight, err := HighlightCSS(r.cfg.highlightStyle)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStandalone, err)
	}

	// Order matters: page style first (base), highlighting last
	css := strings.TrimSpace(r.pageCSS + "\n" + highlight)
	return r.cssInjector.InjectCSS(ctx, page, css), nil
}

// resolvePageStyle resolves the page style input (name, path, or CSS
// content) to CSS content.
func (r *Renderer) resolvePageStyle() error {
	input := r.cfg.pageStyle
	if input == "" {
		input = assets.DefaultStyleName
	}

	switch fileutil.Classify(input) {
	case fileutil.KindInline:
		r.pageCSS = input
		return nil
	case fileutil.KindPath:
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		r.pageCSS = string(content)
		return nil
	}

	css, err := r.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	r.pageCSS = css
	return nil
}

func textOf(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	case template.HTML:
		return string(t), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return "", false
	}
}
