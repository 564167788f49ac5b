// Package hooks defines how each Markdown construct is turned into HTML.
//
// The Markdown renderer walks the document and calls one Set method per
// heading, link, text run, raw HTML, math span and code block. Default is
// the blog implementation; tests and callers with other needs can supply
// their own Set.
package hooks

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/shurcooL/sanitized_anchor_name"
	"github.com/wyatt915/treeblood"
	"golang.org/x/net/html"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "friendly"

// Set renders the leaf constructs of a Markdown document. Arguments that
// carry HTML (heading and link text) are already rendered; text runs are
// already escaped.
type Set interface {
	Heading(text string, level int) string
	Link(text, url, title string) string
	Text(run string) string
	InlineHTML(html string) string
	BlockHTML(html string) string
	InlineMath(tex string) string
	BlockMath(tex string) string
	BlockCode(code, info string) string
}

// Default is the production hook set. It is safe for concurrent use.
type Default struct {
	logger    *slog.Logger
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// Option configures a Default hook set.
type Option func(*Default)

// WithLogger sets the logger used for degraded spans.
func WithLogger(l *slog.Logger) Option {
	return func(d *Default) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithStyle selects the chroma style by name. Unknown names fall back to
// chroma's default style.
func WithStyle(name string) Option {
	return func(d *Default) {
		if name != "" {
			d.style = styles.Get(name)
		}
	}
}

// NewDefault creates the production hook set.
func NewDefault(opts ...Option) *Default {
	d := &Default{
		logger:    slog.Default(),
		style:     styles.Get(DefaultStyle),
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Heading renders an anchored heading. Identical headings get identical
// ids.
func (d *Default) Heading(text string, level int) string {
	return fmt.Sprintf(`<h%d id="%s">%s</h%d>`, level, Slugify(text), text, level)
}

// Link renders an anchor. A "tab:" marker anywhere in url is removed and
// opens the link in a new tab. The title is not emitted.
func (d *Default) Link(text, url, title string) string {
	if strings.Contains(url, "tab:") {
		url = strings.ReplaceAll(url, "tab:", "")
		return `<a href="` + html.EscapeString(url) + `" target="_blank">` + text + "</a>"
	}
	return `<a href="` + html.EscapeString(url) + `">` + text + "</a>"
}

var typographer = strings.NewReplacer(
	"(c)", "©", "(C)", "©",
	"(r)", "®", "(R)", "®",
	"(tm)", "™", "(TM)", "™",
	"(p)", "℗", "(P)", "℗",
	"+-", "±",
)

// Text applies typographic replacements to a text run.
func (d *Default) Text(run string) string {
	return typographer.Replace(run)
}

// InlineHTML passes raw inline HTML through.
func (d *Default) InlineHTML(raw string) string { return raw }

// BlockHTML passes raw block HTML through.
func (d *Default) BlockHTML(raw string) string { return raw }

// Math conversion errors.
var (
	ErrUnbalancedBraces = errors.New("unbalanced braces")
	ErrMathMarkup       = errors.New("converter reported an error")
)

// InlineMath renders LaTeX as inline MathML. Conversion failures are
// logged and render nothing.
func (d *Default) InlineMath(tex string) string {
	return d.math(tex, treeblood.InlineStyle)
}

// BlockMath renders LaTeX as display MathML.
func (d *Default) BlockMath(tex string) string {
	return d.math(tex, treeblood.DisplayStyle)
}

func (d *Default) math(tex string, convert func(string, map[string]string) (string, error)) string {
	out, err := convertMath(tex, convert)
	if err != nil {
		d.logger.Warn("math conversion failed", "tex", tex, "err", err)
		return ""
	}
	return out
}

// convertMath rejects input the converter would silently repair and
// output carrying an <merror> element.
func convertMath(tex string, convert func(string, map[string]string) (string, error)) (string, error) {
	if !balanced(tex) {
		return "", ErrUnbalancedBraces
	}
	out, err := convert(tex, nil)
	if err != nil {
		return "", err
	}
	if strings.Contains(out, "<merror") {
		return "", ErrMathMarkup
	}
	return out, nil
}

// balanced reports whether unescaped braces pair up.
func balanced(tex string) bool {
	depth := 0
	for i := 0; i < len(tex); i++ {
		switch tex[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// BlockCode highlights code with the lexer named by info, falling back to
// plain text. It never fails.
func (d *Default) BlockCode(code, info string) string {
	var lexer chroma.Lexer
	if info != "" {
		lexer = lexers.Get(info)
	}
	if lexer == nil {
		lexer = lexers.Get("plaintext")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		d.logger.Warn("code tokenisation failed", "lang", info, "err", err)
		return plainCode(code)
	}

	var b strings.Builder
	b.WriteString(`<div class="highlight">`)
	if err := d.formatter.Format(&b, d.style, it); err != nil {
		d.logger.Warn("code highlighting failed", "lang", info, "err", err)
		return plainCode(code)
	}
	b.WriteString("</div>\n")
	return b.String()
}

// WriteCSS writes the stylesheet matching BlockCode output.
func (d *Default) WriteCSS(w io.Writer) error {
	return d.formatter.WriteCSS(w, d.style)
}

func plainCode(code string) string {
	return `<div class="highlight"><pre><code>` + html.EscapeString(code) + "</code></pre></div>\n"
}

// Slugify derives a heading id from rendered heading HTML: tags are
// stripped, entities decoded, letters and digits lowercased and every
// other run collapsed to a single dash.
func Slugify(heading string) string {
	return sanitized_anchor_name.Create(plainText(heading))
}

func plainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
