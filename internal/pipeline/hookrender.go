package pipeline

import (
	"bufio"
	"bytes"
	"log/slog"
	"strings"

	mathjax "github.com/litao91/goldmark-mathjax"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-blogmark/internal/hooks"
)

// hookRendererPriority beats goldmark's HTML renderer (1000), so hooked
// kinds are always rendered here.
const hookRendererPriority = 100

// hookRenderer adapts a hooks.Set to goldmark's NodeRenderer. Headings
// and links render their children through the full renderer first, so
// emphasis and code inside them reach the hook as HTML.
type hookRenderer struct {
	hooks  hooks.Set
	logger *slog.Logger
	// full renders child subtrees. Set once the goldmark instance exists.
	full renderer.Renderer
}

func (r *hookRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
	reg.Register(ast.KindText, r.renderText)
	reg.Register(ast.KindRawHTML, r.renderRawHTML)
	reg.Register(ast.KindHTMLBlock, r.renderHTMLBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(mathjax.KindInlineMath, r.renderInlineMath)
	reg.Register(mathjax.KindMathBlock, r.renderMathBlock)
}

// call runs a hook. A panicking hook degrades the span to empty output.
func (r *hookRenderer) call(hook string, f func() string) (out string) {
	defer func() {
		if v := recover(); v != nil {
			r.logger.Error("render hook panicked", "hook", hook, "panic", v)
			out = ""
		}
	}()
	return f()
}

func (r *hookRenderer) renderChildren(source []byte, n ast.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := r.full.Render(&buf, source, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func (r *hookRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Heading)
	text, err := r.renderChildren(source, n)
	if err != nil {
		return ast.WalkStop, err
	}
	_, _ = w.WriteString(r.call("heading", func() string { return r.hooks.Heading(text, n.Level) }))
	_ = w.WriteByte('\n')
	return ast.WalkSkipChildren, nil
}

func (r *hookRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Link)
	text, err := r.renderChildren(source, n)
	if err != nil {
		return ast.WalkStop, err
	}
	url := string(util.URLEscape(n.Destination, true))
	title := string(n.Title)
	_, _ = w.WriteString(r.call("link", func() string { return r.hooks.Link(text, url, title) }))
	return ast.WalkSkipChildren, nil
}

func (r *hookRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.AutoLink)
	url := string(util.URLEscape(n.URL(source), false))
	if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
		url = "mailto:" + url
	}
	text := escapeText(n.Label(source))
	_, _ = w.WriteString(r.call("link", func() string { return r.hooks.Link(text, url, "") }))
	return ast.WalkContinue, nil
}

// joinsNext reports whether t continues into its next sibling on the
// same line.
func joinsNext(t *ast.Text) bool {
	return !t.IsRaw() && !t.SoftLineBreak() && !t.HardLineBreak()
}

func (r *hookRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	if n.IsRaw() {
		_, _ = w.Write(n.Segment.Value(source))
	} else {
		if prev, ok := n.PreviousSibling().(*ast.Text); ok && joinsNext(prev) {
			return ast.WalkContinue, nil
		}
		// goldmark splits a run at entities and delimiters that did not
		// pair up; the hook sees the whole run once.
		value := append([]byte(nil), n.Segment.Value(source)...)
		for joinsNext(n) {
			next, ok := n.NextSibling().(*ast.Text)
			if !ok || next.IsRaw() {
				break
			}
			value = append(value, next.Segment.Value(source)...)
			n = next
		}
		run := escapeRun(value)
		_, _ = w.WriteString(r.call("text", func() string { return r.hooks.Text(run) }))
	}
	switch {
	case n.HardLineBreak():
		_, _ = w.WriteString("<br>\n")
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *hookRenderer) renderRawHTML(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkSkipChildren, nil
	}
	n := node.(*ast.RawHTML)
	var b strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		b.Write(seg.Value(source))
	}
	raw := b.String()
	_, _ = w.WriteString(r.call("inline_html", func() string { return r.hooks.InlineHTML(raw) }))
	return ast.WalkSkipChildren, nil
}

func (r *hookRenderer) renderHTMLBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.HTMLBlock)
	var b strings.Builder
	writeLines(&b, source, n)
	if n.HasClosure() {
		b.Write(n.ClosureLine.Value(source))
	}
	raw := b.String()
	_, _ = w.WriteString(r.call("block_html", func() string { return r.hooks.BlockHTML(raw) }))
	return ast.WalkContinue, nil
}

func (r *hookRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var info string
	if n, ok := node.(*ast.FencedCodeBlock); ok {
		if lang := n.Language(source); lang != nil {
			info = string(lang)
		}
	}
	var b strings.Builder
	writeLines(&b, source, node)
	code := b.String()
	_, _ = w.WriteString(r.call("block_code", func() string { return r.hooks.BlockCode(code, info) }))
	return ast.WalkContinue, nil
}

func (r *hookRenderer) renderInlineMath(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			continue
		}
		value := t.Segment.Value(source)
		if bytes.HasSuffix(value, []byte("\n")) {
			b.Write(value[:len(value)-1])
			b.WriteByte(' ')
		} else {
			b.Write(value)
		}
	}
	tex := b.String()
	_, _ = w.WriteString(r.call("inline_math", func() string { return r.hooks.InlineMath(tex) }))
	return ast.WalkSkipChildren, nil
}

func (r *hookRenderer) renderMathBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var b strings.Builder
	writeLines(&b, source, node)
	tex := b.String()
	if out := r.call("block_math", func() string { return r.hooks.BlockMath(tex) }); out != "" {
		_, _ = w.WriteString(out)
		_ = w.WriteByte('\n')
	}
	return ast.WalkSkipChildren, nil
}

func writeLines(b *strings.Builder, source []byte, n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
}

// escapeRun escapes a text run for element content. Double quotes stay
// literal so directive parameters such as tag:"go" survive rendering.
func escapeRun(value []byte) string {
	return strings.ReplaceAll(escapeText(value), "&quot;", `"`)
}

// escapeText escapes a text run the way goldmark's HTML renderer does,
// resolving backslash escapes and keeping entity references.
func escapeText(value []byte) string {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	html.DefaultWriter.Write(bw, value)
	_ = bw.Flush()
	return buf.String()
}
