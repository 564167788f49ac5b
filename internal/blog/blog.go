// Package blog defines the read-only blog and post views consumed by the
// rendering pipeline, and the narrow query contract used to list posts.
//
// The pipeline never mutates these values. Persistence lives outside this
// module; callers adapt their own storage to PostStore.
package blog

import (
	"errors"
	"time"
)

// DefaultDateFormat is the date pattern used when a blog has none configured.
const DefaultDateFormat = "d M, Y"

// ErrInvalidOrder indicates an order value other than asc or desc.
var ErrInvalidOrder = errors.New("invalid post order")

// Order is the publish-date sort direction of a post listing.
type Order string

// Supported orders.
const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Validate returns ErrInvalidOrder for anything but asc or desc.
func (o Order) Validate() error {
	switch o {
	case OrderAsc, OrderDesc:
		return nil
	default:
		return ErrInvalidOrder
	}
}

// Blog is the metadata of a blog as seen by the renderer.
type Blog struct {
	Title        string    `yaml:"title"`
	Description  string    `yaml:"description"`
	CreatedDate  time.Time `yaml:"createdDate"`
	LastModified time.Time `yaml:"lastModified"`
	LastPosted   time.Time `yaml:"lastPosted"` // zero when the blog never posted
	DateFormat   string    `yaml:"dateFormat"` // Django-style pattern, empty = DefaultDateFormat
	Lang         string    `yaml:"lang"`       // BCP 47 tag
	Domain       string    `yaml:"domain"`     // canonical origin, e.g. https://example.com
	Upgraded     bool      `yaml:"upgraded"`   // premium tier flag

	Posts PostStore `yaml:"-"`
}

// HasPosted reports whether the blog has ever published a post.
func (b *Blog) HasPosted() bool {
	return !b.LastPosted.IsZero()
}

// EffectiveDateFormat returns the configured pattern or DefaultDateFormat.
func (b *Blog) EffectiveDateFormat() string {
	if b.DateFormat == "" {
		return DefaultDateFormat
	}
	return b.DateFormat
}

// Post is a blog post or a standalone page.
type Post struct {
	Title         string    `yaml:"title"`
	Description   string    `yaml:"description"`
	PublishedDate time.Time `yaml:"publishedDate"`
	LastModified  time.Time `yaml:"lastModified"` // zero means "now" for relative times
	Slug          string    `yaml:"slug"`
	Lang          string    `yaml:"lang"`
	IsPage        bool      `yaml:"isPage"`
	Publish       bool      `yaml:"publish"`
	Tags          []string  `yaml:"tags"`
	Content       string    `yaml:"content"`
}

// HasTag reports whether the post carries tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RenderContext associates a render call with an optional blog and post.
// A Post without a Blog is treated as no context at all.
type RenderContext struct {
	Blog *Blog
	Post *Post
}

// Lang returns the language used for date formatting: the post's language
// when a post with a language is present, the blog's otherwise.
func (rc RenderContext) Lang() string {
	if rc.Post != nil && rc.Post.Lang != "" {
		return rc.Post.Lang
	}
	if rc.Blog != nil {
		return rc.Blog.Lang
	}
	return ""
}
