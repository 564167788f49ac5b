// Package yamlutil decodes and encodes the YAML documents blogmark reads:
// config files and site files strictly, Markdown front matter leniently.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds a single YAML document.
const MaxInputSize = 1 << 20

var (
	ErrEmpty    = errors.New("yamlutil: empty document")
	ErrNoTarget = errors.New("yamlutil: nil decode target")
	ErrTooLarge = errors.New("yamlutil: document too large")
)

// Unmarshal decodes data into v, ignoring keys v has no field for.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict decodes data into v and fails on unknown keys.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

// Marshal encodes v as YAML with two-space indentation, sequences
// indented under their key.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	switch {
	case v == nil:
		return ErrNoTarget
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), MaxInputSize)
	case len(bytes.TrimSpace(data)) == 0:
		return ErrEmpty
	}

	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
