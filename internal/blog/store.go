package blog

import (
	"sort"
	"time"
)

// PostQuery describes a post listing request.
type PostQuery struct {
	PublishedOnly   bool      // keep posts with Publish set
	ExcludePages    bool      // drop standalone pages
	PublishedBefore time.Time // keep posts published at or before; zero disables
	Tag             string    // keep posts carrying this tag; empty disables
	Order           Order     // publish-date order; empty means OrderDesc
	Limit           int       // maximum result count; negative means no cap
}

// PostStore lists the posts of a blog.
type PostStore interface {
	Posts(q PostQuery) ([]*Post, error)
}

// SliceStore is an in-memory PostStore over a fixed slice of posts.
type SliceStore []*Post

// Posts filters, orders and limits the stored posts. The stored slice is
// never reordered.
func (s SliceStore) Posts(q PostQuery) ([]*Post, error) {
	order := q.Order
	if order == "" {
		order = OrderDesc
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	out := make([]*Post, 0, len(s))
	for _, p := range s {
		if p == nil {
			continue
		}
		if q.PublishedOnly && !p.Publish {
			continue
		}
		if q.ExcludePages && p.IsPage {
			continue
		}
		if !q.PublishedBefore.IsZero() && p.PublishedDate.After(q.PublishedBefore) {
			continue
		}
		if q.Tag != "" && !p.HasTag(q.Tag) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == OrderAsc {
			return out[i].PublishedDate.Before(out[j].PublishedDate)
		}
		return out[i].PublishedDate.After(out[j].PublishedDate)
	})

	if q.Limit >= 0 && q.Limit < len(out) {
		out = out[:q.Limit]
	}
	return out, nil
}

// Compile-time interface check.
var _ PostStore = SliceStore(nil)
