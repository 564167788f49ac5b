package pipeline

import (
	"context"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSInjector defines the contract for CSS injection into a page.
type CSSInjector interface {
	InjectCSS(ctx context.Context, page, css string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before the end of <head>, else right
// after the <body> start tag, else at the front of page. Tags inside
// comments, scripts and titles are not mistaken for the page structure.
// Blank CSS or a cancelled context leave page unchanged.
func (s *CSSInjection) InjectCSS(ctx context.Context, page, css string) string {
	if strings.TrimSpace(css) == "" || ctx.Err() != nil {
		return page
	}

	block := "<style>" + sanitizeCSS(css) + "</style>"
	pos := styleInsertPos(page)
	return page[:pos] + block + page[pos:]
}

// styleInsertPos returns the byte offset where a style block belongs.
func styleInsertPos(page string) int {
	z := html.NewTokenizer(strings.NewReader(page))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return 0
		}
		// Raw must be measured before TagName lowercases the buffer.
		raw := len(z.Raw())
		switch tt {
		case html.EndTagToken:
			if name, _ := z.TagName(); atom.Lookup(name) == atom.Head {
				return offset
			}
		case html.StartTagToken:
			if name, _ := z.TagName(); atom.Lookup(name) == atom.Body {
				return offset + raw
			}
		}
		offset += raw
	}
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
