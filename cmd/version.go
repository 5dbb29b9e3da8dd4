package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/kevr/gensrc/cmd.Version=...".
var Version = "dev"

func newVersionCmd(e env, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gensrc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			opts.started = true
			fmt.Fprintf(e.stdout, "gensrc %s\n", Version)
		},
	}
}
