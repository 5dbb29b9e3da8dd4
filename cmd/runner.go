package cmd

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kevr/gensrc/internal/config"
	"github.com/kevr/gensrc/internal/ui"
	applog "github.com/kevr/gensrc/pkg/log"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// userError is implemented by every expected failure: missing identity,
// existing output, unresolvable template and invalid settings.
type userError interface {
	error
	UserFacing()
}

// run executes the command tree and maps its outcome to an exit code.
// Expected failures print a single message; anything else prints a full
// diagnostic and a bug-report pointer.
func run(args []string, e env) (code int) {
	opts := &options{bugURL: config.DefaultBugReportURL}
	out := ui.New(e.stderr)

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(e.stderr, "panic: %v\n\n%s", r, debug.Stack())
			reportBug(out, opts.bugURL)
			code = exitError
		}
	}()
	defer applog.Close()

	rootCmd := newRootCmd(e, opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(e.stdout)
	rootCmd.SetErr(e.stderr)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return exitOK
	}

	if !opts.started {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		if cmd != nil {
			fmt.Fprint(e.stderr, cmd.UsageString())
		}
		return exitUsage
	}

	var uerr userError
	if errors.As(err, &uerr) {
		out.Error(err.Error())
		return exitError
	}

	printTrace(e, err)
	reportBug(out, opts.bugURL)
	return exitError
}

// printTrace writes err and every error it wraps, outermost first, with
// their concrete types.
func printTrace(e env, err error) {
	fmt.Fprintf(e.stderr, "unexpected error: %v\n", err)
	for depth := 0; err != nil; depth++ {
		fmt.Fprintf(e.stderr, "  #%d %T: %v\n", depth, err, err)
		err = errors.Unwrap(err)
	}
}

func reportBug(out *ui.Printer, url string) {
	out.Plain("")
	out.Error("If you believe this is a bug, please report its entire\n" +
		"output as an issue on " + url + " with the command used")
}
