package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kevr/gensrc/internal/config"
	"github.com/kevr/gensrc/internal/generator"
	"github.com/kevr/gensrc/internal/identity"
	"github.com/kevr/gensrc/internal/templates"
	"github.com/kevr/gensrc/internal/ui"
	applog "github.com/kevr/gensrc/pkg/log"
)

// env carries the process-level dependencies a run uses.
type env struct {
	stdout   io.Writer
	stderr   io.Writer
	// identity defaults to the global Git configuration.
	identity identity.Provider
	// now defaults to time.Now.
	now      func() time.Time
}

// options holds the parsed flags and state shared across commands of a run.
type options struct {
	output     string
	force      bool
	configPath string
	verbose    bool

	// started is set once a command's RunE is entered. Errors returned
	// before that point are usage errors.
	started bool
	bugURL  string
}

// Execute runs the CLI against the process arguments and exits.
// This is called by main.main().
func Execute() {
	os.Exit(run(os.Args[1:], env{stdout: os.Stdout, stderr: os.Stderr}))
}

// newRootCmd builds the command tree for a single run.
func newRootCmd(e env, opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gensrc <type> -o <output>",
		Short: "Generate a boilerplate source file from a template",
		Long: `gensrc writes a new source file from a bundled template, stamped with the
current year and the author from your global Git configuration.

The output file's extension selects the language, e.g.

    gensrc main -o hello.py
    gensrc main -o src/main.cpp --force`,
		Args:          cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:     generator.Types,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.started = true

			cfg, err := opts.prepare(e)
			if err != nil {
				return err
			}
			return runGenerate(e, cfg, generator.Request{
				Type:   args[0],
				Output: opts.output,
				Force:  opts.force,
			})
		},
	}

	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "destination file; its extension selects the language")
	rootCmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite the output file if it already exists")
	_ = rootCmd.MarkFlagRequired("output")

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/gensrc/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newListCmd(e, opts), newDoctorCmd(e, opts), newVersionCmd(e, opts))
	return rootCmd
}

// prepare loads the settings file and configures logging.
func (o *options) prepare(e env) (*config.Config, error) {
	path, required := o.configPath, true
	if path == "" {
		path, required = config.DefaultPath(), false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}
	o.bugURL = cfg.BugReportURL

	level := cfg.Logging.Level
	if o.verbose {
		level = "debug"
	}
	if err := applog.Init(e.stderr, cfg.Logging.Path, level); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	return cfg, nil
}

// runGenerate renders the requested template to req.Output.
func runGenerate(e env, cfg *config.Config, req generator.Request) error {
	provider := e.identity
	if provider == nil {
		provider = identity.GitConfig{}
	}

	g := &generator.Generator{
		Identity:  provider,
		Templates: templates.WithDir(cfg.TemplatesDir),
		Now:       e.now,
	}
	res, err := g.Generate(req)
	if err != nil {
		return err
	}
	if res.Replaced {
		ui.New(e.stderr).Warning(fmt.Sprintf("overwrote existing file %s", res.Path))
	}
	return nil
}
