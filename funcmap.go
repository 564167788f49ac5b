package blogmark

import (
	"context"
	"html/template"
	"time"

	"github.com/alnah/go-blogmark/internal/dateutil"
)

// FuncMap exposes the pipeline to html/template under rc:
//
//   - markdown VALUE: rendered HTML, "" for values without text
//   - clean HTML: sanitized HTML
//   - unmark TEXT: plain-text excerpt
//   - format_date TIME PATTERN LANG: localized date
func (r *Renderer) FuncMap(rc RenderContext) template.FuncMap {
	return template.FuncMap{
		"markdown": func(v any) template.HTML {
			return template.HTML(r.MarkdownValue(context.Background(), v, rc)) // #nosec G203 -- rendered by this pipeline
		},
		"clean": func(markup string) template.HTML {
			return template.HTML(r.Clean(markup)) // #nosec G203 -- sanitized
		},
		"unmark":      r.Unmark,
		"format_date": FormatDate,
	}
}

// FormatDate formats t with a Django-style pattern in lang. A zero time
// yields "", an empty pattern means DefaultDateFormat and an invalid
// pattern yields "".
func FormatDate(t time.Time, pattern, lang string) string {
	if pattern == "" {
		pattern = DefaultDateFormat
	}
	out, err := dateutil.FormatDate(t, pattern, lang)
	if err != nil {
		return ""
	}
	return out
}

// TimeSince returns the localized elapsed time between from and to in at
// most two adjacent units, such as "2 weeks, 3 days".
func TimeSince(from, to time.Time, lang string) string {
	return dateutil.TimeSince(from, to, lang)
}
