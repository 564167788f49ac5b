package assets

import (
	"errors"
	"fmt"
)

// DefaultStyleName is the name of the built-in page stylesheet.
const DefaultStyleName = "default"

// AssetLoader loads stylesheets and HTML templates by name. Names carry
// no extension and no directory.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// NewLoader returns the built-in theme when dir is empty. Otherwise the
// theme directory is consulted first and the built-in theme fills in
// whatever it lacks.
func NewLoader(dir string) (AssetLoader, error) {
	if dir == "" {
		return Builtin, nil
	}
	theme, err := OpenTheme(dir)
	if err != nil {
		return nil, err
	}
	return Layers{theme, Builtin}, nil
}

// Layers looks an asset up in each loader in turn. Only a missing asset
// moves the lookup to the next layer: an invalid name or a read failure
// is returned as is.
type Layers []AssetLoader

// LoadStyle returns the first layer's stylesheet called name.
func (l Layers) LoadStyle(name string) (string, error) {
	return l.first(name, ErrStyleNotFound, func(a AssetLoader) (string, error) {
		return a.LoadStyle(name)
	})
}

// LoadTemplate returns the first layer's template called name.
func (l Layers) LoadTemplate(name string) (string, error) {
	return l.first(name, ErrTemplateNotFound, func(a AssetLoader) (string, error) {
		return a.LoadTemplate(name)
	})
}

func (l Layers) first(name string, notFound error, load func(AssetLoader) (string, error)) (string, error) {
	for _, layer := range l {
		content, err := load(layer)
		if !errors.Is(err, notFound) {
			return content, err
		}
	}
	return "", fmt.Errorf("%w: %q", notFound, name)
}

var _ AssetLoader = Layers(nil)
