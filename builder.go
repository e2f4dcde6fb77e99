package mdpress

import (
	"context"
	"fmt"
	"io"
	"time"
)

// DefaultOpenDelay gives the viewer time to load the opened file before a
// clean action deletes it.
const DefaultOpenDelay = 2 * time.Second

// Result is the outcome of one target.
type Result struct {
	Format   Format
	Command  Command
	Err      error // *ConversionError or a context error
	Duration time.Duration
}

// Report collects what a run did. Errors holds every recovered error in the
// order it was printed.
type Report struct {
	Results []Result
	Opened  string
	Removed []string
	Errors  []error
}

// Failed reports whether any conversion or post-build action failed.
func (r *Report) Failed() bool {
	return len(r.Errors) > 0
}

// Builder runs targets one after the other, then the post-build actions.
// Failures are printed as they happen and never stop later steps.
type Builder struct {
	Runner    CommandRunner
	Log       io.Writer           // diagnostics and verbose progress; nil discards
	Hint      func(error) string  // optional suffix for printed errors
	Sleep     func(time.Duration) // nil = time.Sleep
	OpenDelay time.Duration
}

// NewBuilder creates a Builder spawning real processes.
func NewBuilder(log io.Writer) *Builder {
	return &Builder{
		Runner:    &ExecRunner{},
		Log:       log,
		Sleep:     time.Sleep,
		OpenDelay: DefaultOpenDelay,
	}
}

// Run builds every target of cfg, then opens, then cleans. Cancelling ctx
// kills the running converter and skips the remaining steps.
func (b *Builder) Run(ctx context.Context, cfg BuildConfig) *Report {
	rep := &Report{}

	if cfg.Stdin && cfg.Verbose {
		b.logf("stdin requested; reading %s\n", cfg.InputPath)
	}

	for _, f := range cfg.Targets {
		if err := ctx.Err(); err != nil {
			b.fail(rep, err)
			return rep
		}
		b.build(ctx, cfg, f, rep)
	}

	if cfg.Wants(ActionOpen) {
		if err := ctx.Err(); err != nil {
			b.fail(rep, err)
			return rep
		}
		b.open(ctx, cfg, rep)
	}

	for _, a := range []Action{ActionClean, ActionCleanLight} {
		if cfg.Wants(a) {
			b.clean(cfg, a, rep)
		}
	}

	return rep
}

func (b *Builder) build(ctx context.Context, cfg BuildConfig, f Format, rep *Report) {
	cmd := BuildCommand(cfg, f)
	if cfg.Verbose {
		b.logf("Building %s\n", f)
		b.logf("%s\n", cmd)
	}

	start := time.Now()
	err := runCommand(ctx, b.Runner, cmd)
	rep.Results = append(rep.Results, Result{Format: f, Command: cmd, Err: err, Duration: time.Since(start)})
	if err != nil {
		b.fail(rep, err)
	}
}

func (b *Builder) open(ctx context.Context, cfg BuildConfig, rep *Report) {
	base, _ := SplitExt(cfg.InputPath)
	path := base + PrimaryExtension(cfg)
	cmd := OpenCommand(cfg.Tools.Open, path)
	if cfg.Verbose {
		b.logf("Opening\n")
		b.logf("%s\n", cmd)
	}

	if _, err := b.Runner.Run(ctx, cmd.Tool, cmd.Args...); err != nil {
		b.fail(rep, fmt.Errorf("%w: %s: %s (exit code %d): %w", ErrOpen, path, cmd.Tool, exitCode(err), err))
	} else {
		rep.Opened = path
	}

	if b.OpenDelay > 0 {
		sleep := b.Sleep
		if sleep == nil {
			sleep = time.Sleep
		}
		sleep(b.OpenDelay)
	}
}

func (b *Builder) clean(cfg BuildConfig, a Action, rep *Report) {
	dir := InputDir(cfg.InputPath)
	if cfg.Verbose {
		b.logf("Cleaning %s (%s)\n", dir, a)
	}

	removed, errs := Clean(dir, CleanSuffixes(a))
	rep.Removed = append(rep.Removed, removed...)
	if cfg.Verbose {
		for _, p := range removed {
			b.logf("removed %s\n", p)
		}
	}
	for _, err := range errs {
		b.fail(rep, err)
	}
}

// fail prints err immediately and records it.
func (b *Builder) fail(rep *Report, err error) {
	rep.Errors = append(rep.Errors, err)
	msg := err.Error()
	if b.Hint != nil {
		msg += b.Hint(err)
	}
	b.logf("%s\n", msg)
}

func (b *Builder) logf(format string, args ...any) {
	if b.Log == nil {
		return
	}
	fmt.Fprintf(b.Log, format, args...)
}
