package blogmark

import (
	"log/slog"
	"time"
)

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout        time.Duration
	autoSanitize   bool
	highlightStyle string
	pageStyle      string
	assetPath      string
	embedHosts     []string
	now            func() time.Time
}

// defaultTimeout bounds a single Markdown conversion.
const defaultTimeout = 10 * time.Second

// WithTimeout sets the per-document conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("blogmark: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithAutoSanitize runs Clean on every rendered document.
func WithAutoSanitize(enabled bool) Option {
	return func(r *Renderer) {
		r.cfg.autoSanitize = enabled
	}
}

// WithHighlightStyle selects the chroma style of code blocks and of the
// standalone page stylesheet.
func WithHighlightStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.highlightStyle = name
	}
}

// WithPageStyle sets the standalone page stylesheet: a style name loaded
// from the assets, a path to a CSS file, or CSS content.
func WithPageStyle(input string) Option {
	return func(r *Renderer) {
		r.cfg.pageStyle = input
	}
}

// WithAssetPath overrides embedded templates and styles from a directory.
// Missing files fall back to the embedded defaults.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithAssetLoader replaces the asset loader entirely.
func WithAssetLoader(loader AssetLoader) Option {
	return func(r *Renderer) {
		r.assetLoader = loader
	}
}

// WithEmbedHosts replaces the sanitizer's embed host allow-list.
func WithEmbedHosts(hosts ...string) Option {
	return func(r *Renderer) {
		r.cfg.embedHosts = hosts
	}
}

// WithHooks replaces the hook set that renders leaf constructs.
func WithHooks(h Hooks) Option {
	return func(r *Renderer) {
		r.hooks = h
	}
}

// WithResolver replaces the macro resolver.
func WithResolver(res Resolver) Option {
	return func(r *Renderer) {
		r.resolver = res
	}
}

// WithListingRenderer replaces the renderer of the post_list and
// email_subscribe_form fragments.
func WithListingRenderer(l ListingRenderer) Option {
	return func(r *Renderer) {
		r.listings = l
	}
}

// WithClock sets the clock used for relative times and for hiding
// posts scheduled in the future.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.cfg.now = now
		}
	}
}

// WithLogger sets the logger for degraded output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}
