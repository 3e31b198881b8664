package pkgmgr_test

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/publisherr/publisherr/pkg/domain/model"
	"github.com/publisherr/publisherr/pkg/infra/pkgmgr"
)

type call struct {
	Dir  string
	Name string
	Args []string
}

// fakeRunner records invocations and replies with canned output
type fakeRunner struct {
	calls  []call
	output []byte
	err    error
}

func (r *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, call{Dir: dir, Name: name, Args: args})
	return r.output, r.err
}

func TestNew_Validation(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		c, err := pkgmgr.New()
		gt.NoError(t, err)
		gt.Value(t, c).NotNil()
	})

	t.Run("Unsupported package manager", func(t *testing.T) {
		_, err := pkgmgr.New(pkgmgr.WithCommand("yarn"))
		gt.Error(t, err)
	})

	t.Run("Invalid access", func(t *testing.T) {
		_, err := pkgmgr.New(pkgmgr.WithAccess("private"))
		gt.Error(t, err)
	})
}

func TestClient_DistTags(t *testing.T) {
	ctx := context.Background()

	t.Run("Parses registry response", func(t *testing.T) {
		runner := &fakeRunner{output: []byte(`{"latest":"1.0.0","feature-x":"1.0.1-feature-x.2"}`)}
		c, err := pkgmgr.New(pkgmgr.WithRunner(runner), pkgmgr.WithDir("/work/pkg"))
		gt.NoError(t, err)

		tags, err := c.DistTags(ctx, "@scope/pkg")
		gt.NoError(t, err)
		gt.V(t, tags).Equal(model.DistTags{"latest": "1.0.0", "feature-x": "1.0.1-feature-x.2"})

		gt.A(t, runner.calls).Length(1)
		gt.V(t, runner.calls[0]).Equal(call{
			Dir:  "/work/pkg",
			Name: "pnpm",
			Args: []string{"view", "@scope/pkg", "dist-tags", "--json"},
		})
	})

	t.Run("Command failure", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New("exit status 1")}
		c, err := pkgmgr.New(pkgmgr.WithRunner(runner))
		gt.NoError(t, err)

		tags, err := c.DistTags(ctx, "unknown-pkg")
		gt.Error(t, err)
		gt.Value(t, tags).Nil()
		gt.String(t, err.Error()).Contains("failed to view dist-tags")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		runner := &fakeRunner{output: []byte("npm ERR! 404")}
		c, err := pkgmgr.New(pkgmgr.WithRunner(runner))
		gt.NoError(t, err)

		_, err = c.DistTags(ctx, "pkg")
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("failed to parse dist-tags")
	})

	t.Run("Empty output", func(t *testing.T) {
		runner := &fakeRunner{output: []byte("\n")}
		c, err := pkgmgr.New(pkgmgr.WithRunner(runner))
		gt.NoError(t, err)

		_, err = c.DistTags(ctx, "pkg")
		gt.Error(t, err)
	})
}

func TestClient_SetVersion(t *testing.T) {
	runner := &fakeRunner{}
	c, err := pkgmgr.New(pkgmgr.WithRunner(runner), pkgmgr.WithCommand(pkgmgr.NPM))
	gt.NoError(t, err)

	gt.NoError(t, c.SetVersion(context.Background(), "1.2.4-feature-x.0"))
	gt.A(t, runner.calls).Length(1)
	gt.V(t, runner.calls[0].Name).Equal("npm")
	gt.V(t, runner.calls[0].Args).Equal([]string{"version", "1.2.4-feature-x.0", "--no-git-tag-version"})
}

func TestClient_Publish(t *testing.T) {
	tests := []struct {
		name     string
		opts     []pkgmgr.Option
		expected []string
	}{
		{
			name:     "pnpm",
			opts:     nil,
			expected: []string{"publish", "--tag", "feature-x", "--no-git-checks", "--access=public"},
		},
		{
			name:     "npm",
			opts:     []pkgmgr.Option{pkgmgr.WithCommand(pkgmgr.NPM)},
			expected: []string{"publish", "--tag", "feature-x", "--access=public"},
		},
		{
			name:     "restricted dry run",
			opts:     []pkgmgr.Option{pkgmgr.WithAccess("restricted"), pkgmgr.WithDryRun(true)},
			expected: []string{"publish", "--tag", "feature-x", "--no-git-checks", "--access=restricted", "--dry-run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			c, err := pkgmgr.New(append(tt.opts, pkgmgr.WithRunner(runner))...)
			gt.NoError(t, err)

			gt.NoError(t, c.Publish(context.Background(), "feature-x"))
			gt.A(t, runner.calls).Length(1)
			gt.V(t, runner.calls[0].Args).Equal(tt.expected)
		})
	}
}

func TestClient_Publish_Error(t *testing.T) {
	runner := &fakeRunner{err: errors.New("E403 forbidden")}
	c, err := pkgmgr.New(pkgmgr.WithRunner(runner))
	gt.NoError(t, err)

	err = c.Publish(context.Background(), "feature-x")
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to publish package")
}

func TestExecRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	ctx := context.Background()
	runner := pkgmgr.NewExecRunner()

	t.Run("Captures stdout", func(t *testing.T) {
		out, err := runner.Run(ctx, "", "sh", "-c", "echo hello; echo ignored >&2")
		gt.NoError(t, err)
		gt.V(t, string(out)).Equal("hello\n")
	})

	t.Run("Non-zero exit", func(t *testing.T) {
		_, err := runner.Run(ctx, "", "sh", "-c", "echo boom >&2; exit 3")
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("command failed")
	})

	t.Run("Runs in directory", func(t *testing.T) {
		dir := t.TempDir()
		out, err := runner.Run(ctx, dir, "pwd")
		gt.NoError(t, err)
		gt.String(t, string(out)).Contains(dir)
	})
}
