package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kevr/gensrc/internal/config"
	"github.com/kevr/gensrc/internal/generator"
	"github.com/kevr/gensrc/internal/identity"
	"github.com/kevr/gensrc/internal/templates"
	"github.com/kevr/gensrc/internal/ui"
)

// doctorError is returned when one or more environment checks fail.
type doctorError struct {
	failed int
}

func (e *doctorError) Error() string {
	return fmt.Sprintf("%d check(s) failed", e.failed)
}

func (e *doctorError) UserFacing() {}

func newDoctorCmd(e env, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the Git identity, settings file and templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.started = true
			return runDoctor(e, opts)
		},
	}
}

// runDoctor reports each prerequisite of a generation run.
func runDoctor(e env, opts *options) error {
	out := ui.New(e.stdout)
	out.Plain("Checking environment...")
	failed := 0

	provider := e.identity
	if provider == nil {
		provider = identity.GitConfig{}
	}
	if id, err := provider.Identity(); err != nil {
		failed++
		var missing *identity.MissingError
		if errors.As(err, &missing) {
			out.Check(false, "git identity", strings.Join(missing.Keys, ", ")+" not set")
		} else {
			out.Check(false, "git identity", err.Error())
		}
	} else {
		out.Check(true, "git identity", id.String())
	}

	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := opts.prepare(e)
	if err != nil {
		failed++
		out.Check(false, "config", err.Error())
		cfg = &config.Config{}
	} else if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		out.Check(true, "config", path+" (not present, using defaults)")
	} else {
		out.Check(true, "config", path)
	}

	set := templates.WithDir(cfg.TemplatesDir)
	for _, typ := range generator.Types {
		exts, err := set.Extensions(typ)
		if err != nil || len(exts) == 0 {
			failed++
			out.Check(false, "templates", fmt.Sprintf("no templates for %q", typ))
			continue
		}
		out.Check(true, "templates", typ+": "+strings.Join(exts, ", "))
	}

	if failed > 0 {
		return &doctorError{failed: failed}
	}
	return nil
}
