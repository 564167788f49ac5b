// Package sanitize restricts rendered HTML to a safe allow-list.
//
// Cleaning runs two passes. The embed filter drops every iframe, embed or
// object whose source is not on the host allow-list, together with its
// content, and empties the ones it keeps. bluemonday then enforces the
// element and attribute allow-list.
// Cleaning is idempotent.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// DefaultEmbedHosts are the hosts whose players may be embedded.
var DefaultEmbedHosts = []string{
	"www.youtube.com",
	"www.youtube-nocookie.com",
	"www.slideshare.net",
	"player.vimeo.com",
	"w.soundcloud.com",
	"www.google.com",
	"codepen.io",
	"stackblitz.com",
	"onedrive.live.com",
	"docs.google.com",
	"bandcamp.com",
	"embed.music.apple.com",
	"drive.google.com",
	"share.transistor.fm",
	"share.descript.com",
	"mrkennedy.ca",
	"open.spotify.com",
	"umap.openstreetmap.fr",
}

// mathElements are the MathML presentation elements produced by the math
// converter.
var mathElements = []string{
	"math", "mrow", "mi", "mn", "mo", "ms", "mtext", "mspace",
	"mfrac", "msqrt", "mroot", "mstyle", "mpadded", "mphantom",
	"msub", "msup", "msubsup", "munder", "mover", "munderover",
	"mtable", "mtr", "mtd", "mlabeledtr", "menclose", "merror",
	"mmultiscripts", "mprescripts", "none", "semantics", "annotation",
}

var mathAttrs = []string{
	"xmlns", "display", "mathvariant", "fence", "stretchy", "separator",
	"movablelimits", "minsize", "maxsize", "linethickness", "columnalign",
	"displaystyle", "accent", "accentunder", "width", "linebreak",
	"lspace", "rspace", "encoding", "largeop", "symmetric", "form",
	"scriptlevel", "mathsize", "notation", "columnspacing", "rowspacing",
	"columnlines", "rowlines", "frame", "height", "depth", "voffset",
}

// Policy is an immutable sanitizing configuration. It is safe for
// concurrent use.
type Policy struct {
	hosts map[string]struct{}
	html  *bluemonday.Policy
}

// Default is the process-wide policy over DefaultEmbedHosts.
var Default = NewPolicy()

// Clean sanitizes markup with the Default policy.
func Clean(markup string) string {
	return Default.Clean(markup)
}

// NewPolicy builds a policy allowing embeds from hosts, or from
// DefaultEmbedHosts when none are given.
func NewPolicy(hosts ...string) *Policy {
	if len(hosts) == 0 {
		hosts = DefaultEmbedHosts
	}
	set := make(map[string]struct{}, len(hosts))
	quoted := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		set[h] = struct{}{}
		quoted = append(quoted, regexp.QuoteMeta(h))
	}
	embedSrc := regexp.MustCompile(`(?i)^https?://(` + strings.Join(quoted, "|") + `)(:\d+)?([/?#]|$)`)

	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("style").Globally()
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")

	p.AllowElements("audio", "video", "source", "details", "summary", "mark", "figure", "figcaption")
	p.AllowNoAttrs().OnElements("details", "summary", "mark", "figure", "figcaption")
	p.AllowAttrs("controls", "autoplay", "loop", "muted", "preload", "poster", "src").OnElements("audio", "video")
	p.AllowAttrs("src", "type").OnElements("source")
	p.AllowAttrs("open").OnElements("details")

	p.AllowElements("iframe", "embed")
	p.AllowAttrs("src").Matching(embedSrc).OnElements("iframe", "embed")
	p.AllowAttrs("width", "height", "allow", "allowfullscreen", "frameborder", "title", "loading").OnElements("iframe")
	p.AllowAttrs("width", "height", "type").OnElements("embed")

	p.AllowElements(mathElements...)
	p.AllowNoAttrs().OnElements(mathElements...)
	p.AllowAttrs(mathAttrs...).OnElements(mathElements...)

	return &Policy{hosts: set, html: p}
}

// Clean returns markup restricted to the allow-list. Markup that cannot be
// parsed yields "".
func (p *Policy) Clean(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	filtered, err := p.filterEmbeds(markup)
	if err != nil {
		return ""
	}
	return p.html.Sanitize(filtered)
}

// AllowsHost reports whether embeds from host are permitted.
func (p *Policy) AllowsHost(host string) bool {
	_, ok := p.hosts[strings.ToLower(host)]
	return ok
}
