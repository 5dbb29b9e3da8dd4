package generator

import (
	"fmt"
	"slices"

	"github.com/kevr/gensrc/internal/identity"
)

// Types is the closed set of source types a template can be requested for.
var Types = []string{"main"}

// Request describes a single generation run.
type Request struct {
	// Type is the source type, one of Types.
	Type   string
	// Output is the destination path. Its extension selects the language.
	Output string
	// Force allows an existing Output to be overwritten.
	Force  bool
}

// Validate checks that the request names a known type. An empty Output is
// left to resolution, which reports it as lacking an extension.
func (r Request) Validate() error {
	if !slices.Contains(Types, r.Type) {
		return &ResolutionError{
			Err:       fmt.Errorf("%w: %q", ErrUnknownType, r.Type),
			Supported: Types,
		}
	}
	return nil
}

// Handle is a resolved template ready to render.
type Handle struct {
	// Key is the template key, e.g. "main.py".
	Key    string
	// Ext is the language extension taken from the output path.
	Ext    string
	// Source is the unparsed template text.
	Source string
}

// Context is the data every template is executed with.
type Context struct {
	// Year is the current calendar year.
	Year     int
	// Author is "name <email>".
	Author   string
	Name     string
	Email    string
	// Filename is the base name of the output file.
	Filename string
	Type     string
	Ext      string
}

// NewContext builds the render context for an author and year.
func NewContext(id identity.Identity, year int) Context {
	return Context{
		Year:   year,
		Author: id.String(),
		Name:   id.Name,
		Email:  id.Email,
	}
}
