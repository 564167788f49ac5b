package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-blogmark/internal/blog"
	"github.com/alnah/go-blogmark/internal/dateutil"
	"github.com/alnah/go-blogmark/internal/yamlutil"
)

// Sentinel errors for site files.
var (
	ErrSiteNotFound = errors.New("site file not found")
	ErrSiteParse    = errors.New("failed to parse site file")
	ErrPostNotFound = errors.New("post not found")
)

// Site is a blog and its posts, as described by a site file:
//
//	blog:
//	  title: Notes
//	  domain: https://notes.example.com
//	posts:
//	  - title: Hello
//	    slug: hello
//	    publish: true
//	    publishedDate: 2025-01-02T10:00:00Z
type Site struct {
	Blog  blog.Blog    `yaml:"blog"`
	Posts []*blog.Post `yaml:"posts"`
}

// LoadSite reads and validates a site file. The returned blog lists its
// posts through an in-memory store.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- site path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSiteNotFound, path)
		}
		return nil, fmt.Errorf("reading site file: %w", err)
	}

	var site Site
	if err := yamlutil.UnmarshalStrict(data, &site); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSiteParse, err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}

	site.Blog.Posts = blog.SliceStore(site.Posts)
	return &site, nil
}

// Validate rejects date formats the renderer could not apply and posts
// without a slug.
func (s *Site) Validate() error {
	if s.Blog.DateFormat != "" {
		if err := dateutil.ValidateDateFormat(s.Blog.DateFormat); err != nil {
			return fmt.Errorf("%w: blog.dateFormat: %v", ErrInvalidField, err)
		}
	}
	for i, p := range s.Posts {
		if p == nil || p.Slug == "" {
			return fmt.Errorf("%w: posts[%d].slug is required", ErrInvalidField, i)
		}
	}
	return nil
}

// Context returns the render context for the post with slug, or for the
// blog alone when slug is empty.
func (s *Site) Context(slug string) (blog.RenderContext, error) {
	rc := blog.RenderContext{Blog: &s.Blog}
	if slug == "" {
		return rc, nil
	}
	for _, p := range s.Posts {
		if p.Slug == slug {
			rc.Post = p
			return rc, nil
		}
	}
	return blog.RenderContext{}, fmt.Errorf("%w: %q", ErrPostNotFound, slug)
}
