// Package fileutil holds the file helpers shared by the renderer and the
// CLI: atomic page writes, output naming and argument classification.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PageMode is the permission given to written pages, which are public.
const PageMode os.FileMode = 0o644

var (
	ErrExtensionEmpty   = errors.New("extension cannot be empty")
	ErrExtensionInvalid = errors.New("extension contains path separator or null byte")
)

// WriteFileAtomic writes content to path through a temporary file in the
// same directory, renamed into place once complete. A dev server serving
// the directory never sees a half-written page.
func WriteFileAtomic(path, content string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".blogmark-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), PageMode); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// OutputPath names the page rendered from input: same base name, new
// extension, placed in dir or next to input when dir is empty.
func OutputPath(input, dir, extension string) (string, error) {
	switch {
	case extension == "":
		return "", ErrExtensionEmpty
	case strings.ContainsAny(extension, "/\\\x00"):
		return "", fmt.Errorf("%w: %q", ErrExtensionInvalid, extension)
	}

	if dir == "" {
		dir = filepath.Dir(input)
	}
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, name+"."+extension), nil
}

// FileExists reports whether path is an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Kind tells how an argument naming a resource should be read.
type Kind int

const (
	KindName   Kind = iota // "default", "solarized-dark"
	KindPath               // "./site.css", `C:\themes\site.css`
	KindInline             // "body { margin: 0 }"
)

// Classify reports the kind of s. A brace means inline content even when
// s also holds a slash, as in url(/img/bg.png).
func Classify(s string) Kind {
	switch {
	case strings.Contains(s, "{"):
		return KindInline
	case IsPath(s):
		return KindPath
	default:
		return KindName
	}
}

// IsPath reports whether s holds a path separator.
func IsPath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
