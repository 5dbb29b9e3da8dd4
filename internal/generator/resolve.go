package generator

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/kevr/gensrc/internal/templates"
)

// Extension returns the final dot-separated segment of the output's base
// name. It reports false when there is no such segment.
func Extension(output string) (string, bool) {
	base := filepath.Base(output)
	i := strings.LastIndex(base, ".")
	if i < 0 || i == len(base)-1 {
		return "", false
	}
	return base[i+1:], true
}

// Resolve maps a source type and output path to a template from set.
//
// Parameters:
//   - set: The template namespace to search.
//   - typ: The source type, e.g. "main".
//   - output: The destination path whose extension selects the language.
//
// Returns:
//   - *Handle: The resolved template.
//   - error: A *ResolutionError if the extension is missing or unsupported.
func Resolve(set *templates.Set, typ, output string) (*Handle, error) {
	supported, err := set.Extensions(typ)
	if err != nil {
		return nil, err
	}

	ext, ok := Extension(output)
	if !ok {
		return nil, &ResolutionError{Err: ErrNoExtension, Supported: supported}
	}

	key := typ + "." + ext
	src, err := set.Lookup(key)
	if errors.Is(err, templates.ErrNotFound) {
		return nil, &ResolutionError{Err: ErrUnsupportedExtension, Ext: ext, Supported: supported}
	}
	if err != nil {
		return nil, err
	}

	return &Handle{Key: key, Ext: ext, Source: src}, nil
}
