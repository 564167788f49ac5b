package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

//go:embed styles/*.css templates/*.html
var builtinFS embed.FS

// Builtin serves the stylesheets and templates compiled into the binary.
var Builtin = NewTheme(builtinFS)

// Theme serves assets from a file tree holding styles/{name}.css and
// templates/{name}.html.
type Theme struct {
	fsys fs.FS
}

// NewTheme serves assets from fsys.
func NewTheme(fsys fs.FS) *Theme {
	return &Theme{fsys: fsys}
}

// OpenTheme serves assets from the directory dir. Reads go through an
// os.Root, so a symlink pointing outside dir fails with ErrAssetRead.
// Returns ErrInvalidBasePath if dir cannot be opened as a directory.
func OpenTheme(dir string) (*Theme, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return NewTheme(root.FS()), nil
}

// LoadStyle reads styles/{name}.css.
func (t *Theme) LoadStyle(name string) (string, error) {
	return t.read("styles", name, ".css", ErrStyleNotFound)
}

// LoadTemplate reads templates/{name}.html.
func (t *Theme) LoadTemplate(name string) (string, error) {
	return t.read("templates", name, ".html", ErrTemplateNotFound)
}

func (t *Theme) read(dir, name, ext string, notFound error) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}

	file := path.Join(dir, name+ext)
	data, err := fs.ReadFile(t.fsys, file)
	switch {
	case err == nil:
		return string(data), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", notFound, name)
	default:
		return "", fmt.Errorf("%w: %s: %v", ErrAssetRead, file, err)
	}
}

// checkName rejects names that could select another directory or
// another extension: separators and dots are not allowed.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

var _ AssetLoader = (*Theme)(nil)
