package main

// Notes:
// - Tests use t.Setenv() which prevents t.Parallel().
// - Invalid or non-positive timeout and worker values are ignored, not errors.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-blogmark/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("BLOGMARK_CONFIG", "/path/to/config.yaml")
	t.Setenv("BLOGMARK_SITE", "site.yaml")
	t.Setenv("BLOGMARK_OUTPUT_DIR", "/out")
	t.Setenv("BLOGMARK_STYLE", "monokai")
	t.Setenv("BLOGMARK_ASSET_PATH", "/assets")
	t.Setenv("BLOGMARK_TIMEOUT", "2m")
	t.Setenv("BLOGMARK_WORKERS", "4")

	cfg := loadEnvConfig()

	checks := []struct {
		field, got, want string
	}{
		{"ConfigPath", cfg.ConfigPath, "/path/to/config.yaml"},
		{"Site", cfg.Site, "site.yaml"},
		{"OutputDir", cfg.OutputDir, "/out"},
		{"Style", cfg.Style, "monokai"},
		{"AssetPath", cfg.AssetPath, "/assets"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m", cfg.Timeout)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadEnvConfig_InvalidNumbersIgnored(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		workers string
	}{
		{"garbage", "soon", "many"},
		{"negative", "-5s", "-2"},
		{"zero", "0s", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BLOGMARK_TIMEOUT", tt.timeout)
			t.Setenv("BLOGMARK_WORKERS", tt.workers)

			cfg := loadEnvConfig()
			if cfg.Timeout != 0 {
				t.Errorf("Timeout = %v, want 0", cfg.Timeout)
			}
			if cfg.Workers != 0 {
				t.Errorf("Workers = %d, want 0", cfg.Workers)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("BLOGMARK_STYEL", "monokai")
	t.Setenv("BLOGMARK_SITE", "site.yaml")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	got := buf.String()
	if !strings.Contains(got, "BLOGMARK_STYEL") {
		t.Errorf("warnings = %q, want BLOGMARK_STYEL reported", got)
	}
	if strings.Contains(got, "BLOGMARK_SITE") {
		t.Errorf("warnings = %q, known variable should not be reported", got)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Priority behavior
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		Site:      "env-site.yaml",
		OutputDir: "/env-out",
		Style:     "monokai",
		AssetPath: "/env-assets",
	}

	t.Run("fills empty fields", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Site.Path != "env-site.yaml" {
			t.Errorf("Site.Path = %q, want env-site.yaml", cfg.Site.Path)
		}
		if cfg.Output.DefaultDir != "/env-out" {
			t.Errorf("Output.DefaultDir = %q, want /env-out", cfg.Output.DefaultDir)
		}
		if cfg.Render.HighlightStyle != "monokai" {
			t.Errorf("Render.HighlightStyle = %q, want monokai", cfg.Render.HighlightStyle)
		}
		if cfg.Assets.BasePath != "/env-assets" {
			t.Errorf("Assets.BasePath = %q, want /env-assets", cfg.Assets.BasePath)
		}
	})

	t.Run("config file wins", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Site.Path = "file-site.yaml"
		cfg.Render.HighlightStyle = "friendly"
		applyEnvConfig(env, cfg)

		if cfg.Site.Path != "file-site.yaml" {
			t.Errorf("Site.Path = %q, want file-site.yaml", cfg.Site.Path)
		}
		if cfg.Render.HighlightStyle != "friendly" {
			t.Errorf("Render.HighlightStyle = %q, want friendly", cfg.Render.HighlightStyle)
		}
	})
}
