//go:build bench

package pipeline

import (
	"context"
	"strings"
	"testing"
)

// BenchmarkInjectCSS measures stylesheet injection into standalone pages.
func BenchmarkInjectCSS(b *testing.B) {
	injector := &CSSInjection{}
	ctx := context.Background()

	smallPage := `<!DOCTYPE html>
<html>
<head><title>Post</title></head>
<body><h1>Hello</h1></body>
</html>`

	largePage := `<!DOCTYPE html>
<html>
<head><title>Post</title></head>
<body>` + strings.Repeat("<p>Paragraph content here.</p>\n", 500) + `</body>
</html>`

	smallCSS := "body { margin: 0; }"
	largeCSS := strings.Repeat(".chroma .k { color: #007020; font-weight: bold }\n", 100)

	inputs := []struct {
		name string
		page string
		css  string
	}{
		{"small_page_small_css", smallPage, smallCSS},
		{"small_page_large_css", smallPage, largeCSS},
		{"large_page_small_css", largePage, smallCSS},
		{"fragment", strings.Repeat("<p>Paragraph content here.</p>\n", 500), smallCSS},
	}

	for _, input := range inputs {
		b.Run(input.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = injector.InjectCSS(ctx, input.page, input.css)
			}
		})
	}
}
