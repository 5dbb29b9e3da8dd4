// Package templates holds the bundled source file templates and resolves
// template keys against a layered set of template directories.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Suffix is appended to a template key to form its file name.
const Suffix = ".tmpl"

//go:embed *.tmpl
var templatesFS embed.FS

// ErrNotFound is returned by Lookup when no layer provides the key.
var ErrNotFound = errors.New("template not found")

// Set resolves template keys against an ordered list of filesystems.
// Earlier layers shadow later ones.
type Set struct {
	layers []fs.FS
}

// New returns a Set searching the given layers in order.
func New(layers ...fs.FS) *Set {
	return &Set{layers: layers}
}

// Bundled returns a Set containing only the embedded templates.
func Bundled() *Set {
	return New(templatesFS)
}

// WithDir returns a Set where templates in dir override the bundled ones.
// An empty dir yields Bundled().
func WithDir(dir string) *Set {
	if dir == "" {
		return Bundled()
	}
	return New(os.DirFS(dir), templatesFS)
}

// Lookup returns the source of the template registered under key
// (e.g. "main.cpp").
func (s *Set) Lookup(key string) (string, error) {
	name := key + Suffix
	for _, layer := range s.layers {
		content, err := fs.ReadFile(layer, name)
		if err == nil {
			return string(content), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to read template %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, key)
}

// Keys lists every template key available across all layers, sorted.
func (s *Set) Keys() ([]string, error) {
	seen := make(map[string]bool)
	for _, layer := range s.layers {
		matches, err := fs.Glob(layer, "*"+Suffix)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			seen[strings.TrimSuffix(m, Suffix)] = true
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Extensions lists the language extensions available for a source type,
// sorted and without duplicates.
func (s *Set) Extensions(typ string) ([]string, error) {
	keys, err := s.Keys()
	if err != nil {
		return nil, err
	}

	prefix := typ + "."
	var exts []string
	for _, k := range keys {
		if ext, ok := strings.CutPrefix(k, prefix); ok && ext != "" && !strings.Contains(ext, ".") {
			exts = append(exts, ext)
		}
	}
	return exts, nil
}
