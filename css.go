package blogmark

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alnah/go-blogmark/internal/hooks"
)

// HighlightCSS returns the stylesheet for code blocks highlighted with the
// named chroma style. An empty name selects the default style.
func HighlightCSS(style string) (string, error) {
	if style == "" {
		style = hooks.DefaultStyle
	}
	if _, ok := styles.Registry[style]; !ok {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, style)
	}

	var b strings.Builder
	if err := hooks.NewDefault(hooks.WithStyle(style)).WriteCSS(&b); err != nil {
		return "", fmt.Errorf("writing %q stylesheet: %w", style, err)
	}
	return b.String(), nil
}

// HighlightStyles lists the available highlight style names, sorted.
func HighlightStyles() []string {
	return styles.Names()
}
