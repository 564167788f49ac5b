package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-blogmark/internal/fileutil"
	"github.com/alnah/go-blogmark/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config field")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxStyleNameLength = 50   // "friendly", "solarized-dark256"
	MaxHostLength      = 253  // RFC 1035
	MaxEmbedHosts      = 100
)

// AppName names the per-user config directory.
const AppName = "go-blogmark"

// Config holds all configuration for rendering.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Assets   AssetsConfig   `yaml:"assets"`
	Site     SiteConfig     `yaml:"site"`
	Output   OutputConfig   `yaml:"output"`
	Sanitize SanitizeConfig `yaml:"sanitize"`
}

// RenderConfig defines Markdown rendering options.
type RenderConfig struct {
	AutoSanitize   bool   `yaml:"autoSanitize"`   // clean every rendered document
	HighlightStyle string `yaml:"highlightStyle"` // chroma style (empty = friendly)
	Standalone     bool   `yaml:"standalone"`     // wrap output in a full HTML page
	PageStyle      string `yaml:"pageStyle"`      // page stylesheet for standalone output
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// SiteConfig locates the blog and post metadata used as render context.
type SiteConfig struct {
	Path string `yaml:"path"` // Empty = render without a blog
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// SanitizeConfig overrides the sanitizer's embed host allow-list.
type SanitizeConfig struct {
	EmbedHosts []string `yaml:"embedHosts"` // Empty = built-in list
}

// Validate checks field lengths and formats. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.pageStyle", c.Render.PageStyle, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.path", c.Site.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if len(c.Sanitize.EmbedHosts) > MaxEmbedHosts {
		return fmt.Errorf("%w: sanitize.embedHosts has %d entries, max %d", ErrInvalidField, len(c.Sanitize.EmbedHosts), MaxEmbedHosts)
	}
	for i, host := range c.Sanitize.EmbedHosts {
		field := fmt.Sprintf("sanitize.embedHosts[%d]", i)
		if err := validateFieldLength(field, host, MaxHostLength); err != nil {
			return err
		}
		if host == "" || strings.ContainsAny(host, "/: \t") {
			return fmt.Errorf("%w: %s: %q must be a bare host name", ErrInvalidField, field, host)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: embedded assets, no site,
// no auto-sanitizing, fragment output.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsPath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in order:
// name.yaml and name.yml in the current directory, then in the user
// config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
