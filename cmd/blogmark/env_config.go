package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-blogmark/internal/config"
)

// envPrefix marks the variables read by loadEnvConfig.
const envPrefix = "BLOGMARK_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // BLOGMARK_CONFIG: config file name or path
	Site       string        // BLOGMARK_SITE: site file path
	OutputDir  string        // BLOGMARK_OUTPUT_DIR: default output directory
	Style      string        // BLOGMARK_STYLE: chroma highlight style
	AssetPath  string        // BLOGMARK_ASSET_PATH: template and style overrides
	Timeout    time.Duration // BLOGMARK_TIMEOUT: per-document timeout
	Workers    int           // BLOGMARK_WORKERS: parallel workers
}

// knownEnvVars lists valid BLOGMARK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BLOGMARK_CONFIG":     true,
	"BLOGMARK_SITE":       true,
	"BLOGMARK_OUTPUT_DIR": true,
	"BLOGMARK_STYLE":      true,
	"BLOGMARK_ASSET_PATH": true,
	"BLOGMARK_TIMEOUT":    true,
	"BLOGMARK_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable durations and counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("BLOGMARK_CONFIG"),
		Site:       os.Getenv("BLOGMARK_SITE"),
		OutputDir:  os.Getenv("BLOGMARK_OUTPUT_DIR"),
		Style:      os.Getenv("BLOGMARK_STYLE"),
		AssetPath:  os.Getenv("BLOGMARK_ASSET_PATH"),
	}

	if timeout := os.Getenv("BLOGMARK_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("BLOGMARK_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized BLOGMARK_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Site != "" && cfg.Site.Path == "" {
		cfg.Site.Path = env.Site
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" && cfg.Render.HighlightStyle == "" {
		cfg.Render.HighlightStyle = env.Style
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
}
