package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevr/gensrc/internal/generator"
	"github.com/kevr/gensrc/internal/templates"
)

func newListCmd(e env, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.started = true

			cfg, err := opts.prepare(e)
			if err != nil {
				return err
			}

			set := templates.WithDir(cfg.TemplatesDir)
			for _, typ := range generator.Types {
				exts, err := set.Extensions(typ)
				if err != nil {
					return err
				}
				for _, ext := range exts {
					fmt.Fprintf(e.stdout, "%s.%s\n", typ, ext)
				}
			}
			return nil
		},
	}
}
