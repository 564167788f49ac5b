package macro

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-blogmark/internal/blog"
)

var (
	// postsDirectivePattern matches {{ posts ... }} with its parameters.
	postsDirectivePattern = regexp.MustCompile(`\{\{\s*posts([^}]*)\}\}`)

	// postsParamPattern finds each recognized parameter independently.
	postsParamPattern = regexp.MustCompile(`tag:"([^"]+)"|limit:(\d+)|order:(asc|desc)|description:(True)|content:(True)`)
)

// PostsDirective holds the parameters of a {{ posts ... }} directive.
type PostsDirective struct {
	Tag             string
	Limit           int // -1 means no cap
	Order           blog.Order
	ShowDescription bool
	ShowContent     bool
}

// ParsePostsDirective extracts parameters from the text between "posts"
// and the closing braces. Parameter order does not matter, unrecognized
// text is ignored and a repeated parameter keeps its last value. A limit
// too large for an int is ignored.
func ParsePostsDirective(params string) PostsDirective {
	d := PostsDirective{Limit: -1, Order: blog.OrderDesc}
	for _, m := range postsParamPattern.FindAllStringSubmatch(params, -1) {
		switch {
		case m[1] != "":
			d.Tag = strings.TrimSpace(m[1])
		case m[2] != "":
			if n, err := strconv.Atoi(m[2]); err == nil {
				d.Limit = n
			}
		case m[3] != "":
			d.Order = blog.Order(m[3])
		case m[4] != "":
			d.ShowDescription = true
		case m[5] != "":
			d.ShowContent = true
		}
	}
	return d
}
