// Package excerpt derives plain-text previews from Markdown.
package excerpt

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const (
	// MaxRunes caps the excerpt length before the ellipsis.
	MaxRunes = 400

	// Ellipsis is appended to every excerpt, truncated or not.
	Ellipsis = "..."
)

// md is a plain renderer: no hooks, and raw HTML is omitted.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote))

// Unmark renders content and returns its visible text, trimmed, cut to
// MaxRunes runes and followed by Ellipsis. Content that fails to render
// is used as is.
func Unmark(content string) string {
	return truncate(plainText(content), MaxRunes) + Ellipsis
}

func plainText(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return strings.TrimSpace(content)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(doc.Text())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
