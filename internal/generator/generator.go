// Package generator turns a Request into a rendered source file on disk.
package generator

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kevr/gensrc/internal/identity"
	"github.com/kevr/gensrc/internal/templates"
)

// Generator wires the identity lookup, template namespace and clock used by
// a generation run.
type Generator struct {
	Identity  identity.Provider
	Templates *templates.Set
	// Now defaults to time.Now.
	Now       func() time.Time
	// Logger defaults to slog.Default().
	Logger    *slog.Logger
}

// Result describes a completed run.
type Result struct {
	Path     string
	Key      string
	Author   string
	// Replaced reports that an existing file was overwritten.
	Replaced bool
}

// Generate runs the pipeline: identity lookup, overwrite guard, template
// resolution, rendering and the final write. The first failure ends the
// run; nothing is written unless every earlier step succeeded.
//
// Parameters:
//   - req: The parsed invocation.
//
// Returns:
//   - *Result: Details of the written file.
//   - error: An identity, conflict or resolution error, or an unexpected failure.
func (g *Generator) Generate(req Request) (*Result, error) {
	logger := g.logger()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := g.Identity.Identity()
	if err != nil {
		return nil, err
	}
	logger.Debug("author resolved", "author", id.String())

	if err := CheckOverwrite(req.Output, req.Force); err != nil {
		return nil, err
	}

	set := g.Templates
	if set == nil {
		set = templates.Bundled()
	}
	handle, err := Resolve(set, req.Type, req.Output)
	if err != nil {
		return nil, err
	}
	logger.Info("language selected based on output", "extension", handle.Ext, "template", handle.Key)

	ctx := NewContext(id, g.now().Year())
	ctx.Filename = filepath.Base(req.Output)
	ctx.Type = req.Type
	ctx.Ext = handle.Ext

	content, err := Render(handle, ctx)
	if err != nil {
		return nil, err
	}

	_, statErr := os.Stat(req.Output)
	replaced := statErr == nil

	if err := Write(req.Output, content); err != nil {
		return nil, err
	}
	logger.Debug("file written", "path", req.Output, "bytes", len(content))

	return &Result{Path: req.Output, Key: handle.Key, Author: ctx.Author, Replaced: replaced}, nil
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
