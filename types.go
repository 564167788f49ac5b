package blogmark

import (
	"github.com/alnah/go-blogmark/internal/assets"
	"github.com/alnah/go-blogmark/internal/blog"
	"github.com/alnah/go-blogmark/internal/hooks"
	"github.com/alnah/go-blogmark/internal/macro"
)

// Data model shared with the internal packages.
type (
	// Blog is the metadata of a blog as seen by the renderer.
	Blog = blog.Blog
	// Post is a blog post or a standalone page.
	Post = blog.Post
	// RenderContext associates a render call with an optional blog and post.
	RenderContext = blog.RenderContext
	// PostStore lists the posts of a blog for {{ posts }} directives.
	PostStore = blog.PostStore
	// PostQuery describes a post listing request.
	PostQuery = blog.PostQuery
	// SliceStore is an in-memory PostStore.
	SliceStore = blog.SliceStore
	// Order is the publish-date sort direction of a listing.
	Order = blog.Order
)

// Listing orders.
const (
	OrderAsc  = blog.OrderAsc
	OrderDesc = blog.OrderDesc
)

// DefaultDateFormat is used when a blog has no date format.
const DefaultDateFormat = blog.DefaultDateFormat

// Extension points.
type (
	// Hooks renders the leaf constructs of a Markdown document.
	Hooks = hooks.Set
	// Resolver substitutes {{ token }} macros in rendered HTML.
	Resolver = macro.Resolver
	// ListingRenderer renders the named post_list and
	// email_subscribe_form fragments.
	ListingRenderer = macro.ListingRenderer
	// AssetLoader loads stylesheets and templates by name.
	AssetLoader = assets.AssetLoader
)
