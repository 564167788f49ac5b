package config

import (
	"errors"
	"testing"
	"time"

	"github.com/alnah/go-blogmark/internal/blog"
)

const siteYAML = `blog:
  title: Notes
  domain: https://notes.example.com
  lang: fr
  dateFormat: "j F Y"
  upgraded: true
  createdDate: 2020-01-02T00:00:00Z
posts:
  - title: Hello
    slug: hello
    publish: true
    publishedDate: 2025-01-02T10:00:00Z
    tags: [intro, go]
  - title: About
    slug: about
    isPage: true
    publish: true
  - title: Draft
    slug: draft
`

func TestLoadSite(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "site.yaml", siteYAML)

	site, err := LoadSite(path)
	if err != nil {
		t.Fatalf("LoadSite() error = %v", err)
	}

	if site.Blog.Title != "Notes" || site.Blog.Lang != "fr" || !site.Blog.Upgraded {
		t.Errorf("Blog = %+v, want title, lang and upgraded flag loaded", site.Blog)
	}
	if want := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC); !site.Blog.CreatedDate.Equal(want) {
		t.Errorf("Blog.CreatedDate = %v, want %v", site.Blog.CreatedDate, want)
	}
	if len(site.Posts) != 3 {
		t.Fatalf("len(Posts) = %d, want 3", len(site.Posts))
	}
	if !site.Posts[0].HasTag("go") {
		t.Errorf("Posts[0].Tags = %v, want go", site.Posts[0].Tags)
	}

	// The blog lists its own posts.
	if site.Blog.Posts == nil {
		t.Fatal("Blog.Posts is nil, want an in-memory store")
	}
	listed, err := site.Blog.Posts.Posts(blog.PostQuery{PublishedOnly: true, ExcludePages: true, Limit: -1})
	if err != nil {
		t.Fatalf("Posts() error = %v", err)
	}
	if len(listed) != 1 || listed[0].Slug != "hello" {
		t.Errorf("listed posts = %v, want [hello]", listed)
	}
}

func TestLoadSite_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "invalid yaml", content: "blog: [", wantErr: ErrSiteParse},
		{name: "unknown field", content: "blog:\n  owner: me\n", wantErr: ErrSiteParse},
		{name: "dangling date escape", content: "blog:\n  dateFormat: 'Y\\'\n", wantErr: ErrInvalidField},
		{name: "post without slug", content: "posts:\n  - title: x\n", wantErr: ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), "site.yaml", tt.content)
			_, err := LoadSite(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadSite() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadSite("/nonexistent/site.yaml")
		if !errors.Is(err, ErrSiteNotFound) {
			t.Errorf("LoadSite() error = %v, want ErrSiteNotFound", err)
		}
	})
}

func TestSite_Context(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "site.yaml", siteYAML)
	site, err := LoadSite(path)
	if err != nil {
		t.Fatalf("LoadSite() error = %v", err)
	}

	t.Run("blog only", func(t *testing.T) {
		t.Parallel()

		rc, err := site.Context("")
		if err != nil {
			t.Fatalf("Context() error = %v", err)
		}
		if rc.Blog != &site.Blog || rc.Post != nil {
			t.Errorf("Context(\"\") = %+v, want blog without post", rc)
		}
	})

	t.Run("known post", func(t *testing.T) {
		t.Parallel()

		rc, err := site.Context("about")
		if err != nil {
			t.Fatalf("Context() error = %v", err)
		}
		if rc.Post == nil || rc.Post.Slug != "about" || !rc.Post.IsPage {
			t.Errorf("Context(about).Post = %+v, want the about page", rc.Post)
		}
	})

	t.Run("unknown post", func(t *testing.T) {
		t.Parallel()

		_, err := site.Context("nope")
		if !errors.Is(err, ErrPostNotFound) {
			t.Errorf("Context() error = %v, want ErrPostNotFound", err)
		}
	})
}
