package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, _, err := parseFlags(os.Args[1:])
	setMaxProcs(err == nil && flags.common.verbose, os.Stderr)

	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// setMaxProcs configures GOMAXPROCS, logging only in verbose mode.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// runMain parses args (without the program name), runs, and returns the
// process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Run 'mdpress --help' for usage.")
		return exitCodeFor(err)
	}

	switch {
	case flags.info.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.info.version:
		fmt.Fprintf(env.Stdout, "mdpress %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err.Error()+fatalHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
