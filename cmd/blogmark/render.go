package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-blogmark"
	"github.com/alnah/go-blogmark/internal/config"
	"github.com/alnah/go-blogmark/internal/hints"
)

// Sentinel errors for render options.
var (
	ErrInvalidFlags    = errors.New("invalid flags")
	ErrInvalidTimeout  = errors.New("invalid timeout")
	ErrPostWithoutSite = errors.New("--post requires a site file")
)

// renderParams holds resolved options shared by every file of a batch.
type renderParams struct {
	site       *config.Site
	post       *blogmark.RenderContext // set by --post
	standalone bool
	workers    int
}

// contextFor returns the render context of a file. --post wins over front
// matter; front matter posts render within the site's blog when one is loaded.
func (p *renderParams) contextFor(fm *blogmark.Post) blogmark.RenderContext {
	if p.post != nil {
		return *p.post
	}
	var rc blogmark.RenderContext
	if p.site != nil {
		rc.Blog = &p.site.Blog
	}
	rc.Post = fm
	return rc
}

// runRender renders markdown files to HTML, then optionally watches them.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	if len(positional) == 0 {
		printRenderUsage(env.Stderr)
		return ErrNoInput
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrTooManyArgs, len(positional))
	}
	input := positional[0]

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	env.Config = cfg

	params, err := buildRenderParams(flags, envCfg, cfg)
	if err != nil {
		return err
	}
	timeout, err := resolveTimeout(flags.timeout, envCfg)
	if err != nil {
		return err
	}

	r, err := newRenderer(cfg, timeout, env)
	if err != nil {
		return err
	}

	files, err := discoverFiles(input, cfg.Output.DefaultDir)
	if err != nil {
		return err
	}
	if len(files) == 0 && !flags.watch {
		return fmt.Errorf("%w: no markdown files in %s", ErrNoInput, input)
	}

	if flags.common.verbose {
		env.Logger.Debug("rendering", "files", len(files), "workers", blogmark.ResolvePoolSize(params.workers))
	}

	renderAndReport := func(files []FileToRender) int {
		results := renderBatch(ctx, r, files, params)
		return printResults(results, flags.common.quiet, flags.common.verbose, env)
	}

	failed := renderAndReport(files)

	if flags.watch {
		if !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Watching %s (Ctrl+C to stop)\n", input)
		}
		return watchFiles(ctx, watchOptions{
			InputPath: input,
			OutputDir: cfg.Output.DefaultDir,
			Render:    func(files []FileToRender) { renderAndReport(files) },
			Logger:    env.Logger,
		})
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrRenderFailed, failed, len(files))
	}
	return nil
}

// loadConfig loads the config named by the flag or BLOGMARK_CONFIG.
// Without either, the neutral defaults apply.
func loadConfig(name string, envCfg *envConfig) (*config.Config, error) {
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over config values.
func mergeFlags(f *renderFlags, cfg *config.Config) {
	if f.output != "" {
		cfg.Output.DefaultDir = f.output
	}
	if f.site.path != "" {
		cfg.Site.Path = f.site.path
	}
	if f.style.highlight != "" {
		cfg.Render.HighlightStyle = f.style.highlight
	}
	if f.style.page != "" {
		cfg.Render.PageStyle = f.style.page
	}
	if f.style.assetPath != "" {
		cfg.Assets.BasePath = f.style.assetPath
	}
	if f.style.standalone {
		cfg.Render.Standalone = true
	}
	if f.sanitize {
		cfg.Render.AutoSanitize = true
	}
}

// buildRenderParams resolves workers and the render context.
func buildRenderParams(f *renderFlags, envCfg *envConfig, cfg *config.Config) (*renderParams, error) {
	workers := f.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return nil, err
	}

	params := &renderParams{
		standalone: cfg.Render.Standalone,
		workers:    workers,
	}

	if cfg.Site.Path == "" {
		if f.site.post != "" {
			return nil, ErrPostWithoutSite
		}
		return params, nil
	}

	site, err := config.LoadSite(cfg.Site.Path)
	if err != nil {
		if errors.Is(err, config.ErrSiteParse) || errors.Is(err, config.ErrInvalidField) {
			return nil, fmt.Errorf("%w%s", err, hints.ForSiteFile())
		}
		return nil, err
	}
	params.site = site

	if f.site.post != "" {
		rc, err := site.Context(f.site.post)
		if err != nil {
			return nil, fmt.Errorf("%w%s", err, hints.ForPostNotFound(siteSlugs(site)))
		}
		params.post = &rc
	}
	return params, nil
}

// resolveTimeout parses the --timeout flag, falling back to
// BLOGMARK_TIMEOUT. Zero keeps the renderer default.
func resolveTimeout(value string, envCfg *envConfig) (time.Duration, error) {
	if value == "" {
		return envCfg.Timeout, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q (use a duration like 5s or 1m)", ErrInvalidTimeout, value)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidTimeout, value)
	}
	return d, nil
}

// newRenderer builds the renderer described by cfg.
func newRenderer(cfg *config.Config, timeout time.Duration, env *Environment) (*blogmark.Renderer, error) {
	opts := []blogmark.Option{
		blogmark.WithAutoSanitize(cfg.Render.AutoSanitize),
		blogmark.WithClock(env.Now),
		blogmark.WithLogger(env.Logger),
	}
	if cfg.Render.HighlightStyle != "" {
		opts = append(opts, blogmark.WithHighlightStyle(cfg.Render.HighlightStyle))
	}
	if cfg.Render.PageStyle != "" {
		opts = append(opts, blogmark.WithPageStyle(cfg.Render.PageStyle))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, blogmark.WithAssetPath(cfg.Assets.BasePath))
	}
	if len(cfg.Sanitize.EmbedHosts) > 0 {
		opts = append(opts, blogmark.WithEmbedHosts(cfg.Sanitize.EmbedHosts...))
	}
	if timeout > 0 {
		opts = append(opts, blogmark.WithTimeout(timeout))
	}

	r, err := blogmark.NewRenderer(opts...)
	if err != nil {
		if errors.Is(err, blogmark.ErrStyleNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(blogmark.HighlightStyles()))
		}
		return nil, err
	}
	return r, nil
}

// siteSlugs lists the slugs defined by a site file.
func siteSlugs(site *config.Site) []string {
	slugs := make([]string, 0, len(site.Posts))
	for _, p := range site.Posts {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}
