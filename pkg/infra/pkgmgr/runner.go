package pkgmgr

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Runner executes a command and returns its standard output. Tests inject
// fake implementations instead of spawning processes.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts a function to Runner
type RunnerFunc func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// Run calls f
func (f RunnerFunc) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return f(ctx, dir, name, args...)
}

type execRunner struct{}

// NewExecRunner returns a Runner backed by os/exec
func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		return nil, goerr.Wrap(err, "command failed",
			goerr.V("command", name),
			goerr.V("args", args),
			goerr.V("exit_code", exitCode),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.Bytes(), nil
}
