// Package macro expands {{ token }} macros in rendered blog HTML.
//
// BlogResolver knows the blog and post vocabulary and the {{ posts }}
// listing directive. ExcludingVerbatim keeps <pre> and <code> regions out
// of reach of any Resolver.
package macro

import (
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/alnah/go-blogmark/internal/blog"
	"github.com/alnah/go-blogmark/internal/dateutil"
)

// Fragment template names requested from the ListingRenderer.
const (
	TemplatePostList       = "post_list"
	TemplateEmailSubscribe = "email_subscribe_form"
)

// Resolver expands macros in markup for a render context.
type Resolver interface {
	Resolve(markup string, rc blog.RenderContext) string
}

// ListingRenderer renders a named HTML fragment template.
type ListingRenderer interface {
	Render(name string, data map[string]any) (string, error)
}

// Localizer formats dates and relative times in an explicit language.
type Localizer interface {
	FormatDate(t time.Time, pattern, lang string) (string, error)
	TimeSince(from, to time.Time, lang string) string
}

// BlogResolver expands the blog macro vocabulary. It is safe for
// concurrent use when its collaborators are.
type BlogResolver struct {
	listings  ListingRenderer
	localizer Localizer
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a BlogResolver.
type Option func(*BlogResolver)

// WithClock sets the clock used for "now". Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *BlogResolver) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLogger sets the logger for swallowed listing and date failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *BlogResolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithLocalizer replaces the date formatting collaborator.
func WithLocalizer(l Localizer) Option {
	return func(r *BlogResolver) {
		if l != nil {
			r.localizer = l
		}
	}
}

// NewBlogResolver creates a resolver rendering fragments with listings.
func NewBlogResolver(listings ListingRenderer, opts ...Option) *BlogResolver {
	r := &BlogResolver{
		listings:  listings,
		localizer: dateutil.Formatter{},
		now:       time.Now,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve expands macros. Without a blog the markup is returned as is.
// Unknown or malformed tokens are left untouched.
func (r *BlogResolver) Resolve(markup string, rc blog.RenderContext) string {
	b := rc.Blog
	if b == nil {
		return markup
	}
	now := r.now()

	markup = postsDirectivePattern.ReplaceAllStringFunc(markup, func(directive string) string {
		params := postsDirectivePattern.FindStringSubmatch(directive)[1]
		return r.postList(ParsePostsDirective(params), rc, now)
	})

	lang := rc.Lang()
	signup := ""
	if b.Upgraded {
		signup = r.render(TemplateEmailSubscribe, map[string]any{"blog": b})
	}

	pairs := []string{
		"{{ email-signup }}", signup,
		"{{email-signup}}", signup,
		"{{ blog_title }}", html.EscapeString(b.Title),
		"{{ blog_description }}", html.EscapeString(b.Description),
		"{{ blog_created_date }}", r.formatDate(b.CreatedDate, b.EffectiveDateFormat(), lang),
		"{{ blog_last_modified }}", r.localizer.TimeSince(b.LastModified, now, lang),
		"{{ blog_link }}", b.Domain,
	}
	if b.HasPosted() {
		pairs = append(pairs, "{{ blog_last_posted }}", r.localizer.TimeSince(b.LastPosted, now, lang))
	}
	if p := rc.Post; p != nil {
		lastModified := p.LastModified
		if lastModified.IsZero() {
			lastModified = now
		}
		pairs = append(pairs,
			"{{ post_title }}", html.EscapeString(p.Title),
			"{{ post_description }}", html.EscapeString(p.Description),
			"{{ post_published_date }}", r.formatDate(p.PublishedDate, b.EffectiveDateFormat(), lang),
			"{{ post_last_modified }}", r.localizer.TimeSince(lastModified, now, lang),
			"{{ post_link }}", b.Domain+"/"+p.Slug,
		)
	}

	// One pass, so substituted values are never expanded again.
	return strings.NewReplacer(pairs...).Replace(markup)
}

func (r *BlogResolver) postList(d PostsDirective, rc blog.RenderContext, now time.Time) string {
	if d.ShowContent && rc.Post != nil && !rc.Post.IsPage {
		d.ShowContent = false
	}

	var posts []*blog.Post
	if store := rc.Blog.Posts; store != nil {
		var err error
		posts, err = store.Posts(blog.PostQuery{
			PublishedOnly:   true,
			ExcludePages:    true,
			PublishedBefore: now,
			Tag:             d.Tag,
			Order:           d.Order,
			Limit:           d.Limit,
		})
		if err != nil {
			r.logger.Warn("post listing query failed", "directive", "posts", "tag", d.Tag, "err", err)
			return ""
		}
	}

	return r.render(TemplatePostList, map[string]any{
		"blog":             rc.Blog,
		"posts":            posts,
		"embed":            true,
		"show_description": d.ShowDescription,
		"show_content":     d.ShowContent,
	})
}

func (r *BlogResolver) render(name string, data map[string]any) string {
	if r.listings == nil {
		r.logger.Warn("no listing renderer configured", "template", name)
		return ""
	}
	out, err := r.listings.Render(name, data)
	if err != nil {
		r.logger.Warn("fragment rendering failed", "template", name, "err", err)
		return ""
	}
	return out
}

func (r *BlogResolver) formatDate(t time.Time, pattern, lang string) string {
	out, err := r.localizer.FormatDate(t, pattern, lang)
	if err == nil {
		return out
	}
	r.logger.Warn("invalid date format, using default", "pattern", pattern, "err", err)
	out, _ = r.localizer.FormatDate(t, blog.DefaultDateFormat, lang)
	return out
}

// Compile-time interface check.
var _ Resolver = (*BlogResolver)(nil)
