package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// MarkdownPreprocessor rewrites Markdown source before conversion.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// lineEndings folds CRLF and lone CR into LF; CRLF is listed first so it
// is consumed as one unit.
var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// inlineDisplayMath matches $$...$$ spans that stay on one line.
var inlineDisplayMath = regexp.MustCompile(`\$\$([^\n]*?)\$\$`)

// BlogPreprocessor prepares blog post Markdown for the converter. A
// cancelled context returns the content untouched.
type BlogPreprocessor struct{}

func (p *BlogPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return NormalizeInlineMath(lineEndings.Replace(content))
}

// NormalizeInlineMath turns every single-line $$x$$ into $x$ so it renders
// inline instead of as a display block. Spans are matched lazily and
// rewritten one by one; a span crossing a newline stays a block.
func NormalizeInlineMath(content string) string {
	if !strings.Contains(content, "$$") {
		return content
	}
	return inlineDisplayMath.ReplaceAllString(content, "$$$1$$")
}
