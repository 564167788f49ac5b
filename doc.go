// Package blogmark renders blog Markdown into HTML fragments.
//
// # Quick Start
//
// Render a post with the package-level defaults:
//
//	out := blogmark.Markdown(ctx, "# Hello\n\n$x^2$ and {{ blog_title }}", blogmark.RenderContext{
//	    Blog: &blogmark.Blog{Title: "Notes", Domain: "https://notes.example"},
//	})
//
// Rendering never fails: malformed Markdown still renders, a math span that
// cannot be converted renders as nothing, and a failed conversion yields an
// empty string. Problems are reported through the configured slog.Logger.
//
// # Rendering Pipeline
//
// Markdown goes through these stages:
//
//  1. Preprocessing (line endings, $$x$$ on one line becomes inline math)
//  2. Markdown to HTML via goldmark (GFM tables, strikethrough, footnotes,
//     math, ==mark==, ^sup^, ~sub~), leaf constructs rendered by a hook set
//  3. Macro substitution ({{ blog_title }}, {{ posts limit:5 }}...) outside
//     <pre> and <code>
//  4. Sanitizing, only when enabled with WithAutoSanitize
//
// Clean and Unmark are separate entry points: Clean restricts HTML to a
// safe allow-list with an embed host allow-list, Unmark extracts a plain
// text excerpt.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := blogmark.NewRenderer(
//	    blogmark.WithHighlightStyle("monokai"),
//	    blogmark.WithAutoSanitize(true),
//	    blogmark.WithAssetPath("/path/to/custom/assets"),
//	)
//
// A Renderer is safe for concurrent use.
//
// # Templates
//
// FuncMap exposes the pipeline to html/template:
//
//	tmpl := template.New("post").Funcs(r.FuncMap(rc))
//	// {{ markdown .Content }} {{ clean .Raw }} {{ unmark .Content }}
//	// {{ format_date .PublishedDate "j F Y" "fr" }}
//
// # Custom Assets
//
// The {{ posts }} listing, the {{ email-signup }} form and the standalone
// page are html/template files. Override them from a directory:
//
//	assets/
//	├── styles/
//	│   └── default.css
//	└── templates/
//	    ├── document.html
//	    ├── email_subscribe_form.html
//	    └── post_list.html
//
// Missing files fall back to the embedded defaults.
package blogmark
