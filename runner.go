package mdpress

import (
	"context"
	"errors"
	"os/exec"

	"github.com/alnah/go-mdpress/internal/process"
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	// Run executes name with args and returns combined stdout and stderr.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner implements CommandRunner using os/exec. Each child gets its own
// process group so cancelling ctx also stops the LaTeX engine pandoc starts.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- tool names come from user config
	process.Isolate(cmd)
	return cmd.CombinedOutput()
}

// exitCode extracts the process exit status from err, -1 when the process
// never started or died without one.
func exitCode(err error) int {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return -1
}

// runCommand executes c and wraps a failure into a *ConversionError.
func runCommand(ctx context.Context, runner CommandRunner, c Command) error {
	out, err := runner.Run(ctx, c.Tool, c.Args...)
	if err == nil {
		return nil
	}
	return &ConversionError{
		Tool:     c.Tool,
		File:     c.Input,
		ExitCode: exitCode(err),
		Output:   string(out),
		Err:      err,
	}
}
