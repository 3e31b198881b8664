package pkgmgr

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/publisherr/publisherr/pkg/domain/interfaces"
	"github.com/publisherr/publisherr/pkg/domain/model"
)

const (
	PNPM = "pnpm"
	NPM  = "npm"
)

// Managers lists the supported package manager commands
var Managers = []string{PNPM, NPM}

// config holds internal client configuration
type config struct {
	command string
	dir     string
	access  string
	dryRun  bool
	runner  Runner
}

// Option is a functional option for Client configuration
type Option func(*config)

// WithCommand sets the package manager command, pnpm or npm
func WithCommand(command string) Option {
	return func(c *config) {
		c.command = command
	}
}

// WithDir sets the package directory commands run in
func WithDir(dir string) Option {
	return func(c *config) {
		c.dir = dir
	}
}

// WithAccess sets the publish access level, public or restricted
func WithAccess(access string) Option {
	return func(c *config) {
		c.access = access
	}
}

// WithDryRun makes Publish pass --dry-run to the package manager
func WithDryRun(dryRun bool) Option {
	return func(c *config) {
		c.dryRun = dryRun
	}
}

// WithRunner replaces the command runner
func WithRunner(runner Runner) Option {
	return func(c *config) {
		c.runner = runner
	}
}

// Client drives a package manager CLI
type Client struct {
	cfg *config
}

var _ interfaces.PackageManager = (*Client)(nil)

// New creates a package manager client
func New(opts ...Option) (*Client, error) {
	cfg := &config{
		command: PNPM,
		dir:     ".",
		access:  "public",
		runner:  NewExecRunner(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !slices.Contains(Managers, cfg.command) {
		return nil, goerr.New("unsupported package manager",
			goerr.V("command", cfg.command),
			goerr.V("supported", Managers),
		)
	}
	if cfg.access != "public" && cfg.access != "restricted" {
		return nil, goerr.New("invalid access level", goerr.V("access", cfg.access))
	}

	return &Client{cfg: cfg}, nil
}

// DistTags fetches all distribution tags of a package from the registry
func (c *Client) DistTags(ctx context.Context, packageName string) (model.DistTags, error) {
	out, err := c.run(ctx, "view", packageName, "dist-tags", "--json")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to view dist-tags", goerr.V("package", packageName))
	}

	if len(strings.TrimSpace(string(out))) == 0 {
		return nil, goerr.New("empty dist-tags response", goerr.V("package", packageName))
	}

	var tags model.DistTags
	if err := json.Unmarshal(out, &tags); err != nil {
		return nil, goerr.Wrap(err, "failed to parse dist-tags",
			goerr.V("package", packageName),
			goerr.V("output", string(out)),
		)
	}

	return tags, nil
}

// SetVersion writes version into the manifest without creating a git tag
func (c *Client) SetVersion(ctx context.Context, version string) error {
	if _, err := c.run(ctx, "version", version, "--no-git-tag-version"); err != nil {
		return goerr.Wrap(err, "failed to set package version", goerr.V("version", version))
	}
	return nil
}

// Publish publishes the package under the given distribution tag
func (c *Client) Publish(ctx context.Context, tag string) error {
	if _, err := c.run(ctx, c.publishArgs(tag)...); err != nil {
		return goerr.Wrap(err, "failed to publish package", goerr.V("tag", tag))
	}
	return nil
}

func (c *Client) publishArgs(tag string) []string {
	args := []string{"publish", "--tag", tag}
	if c.cfg.command == PNPM {
		args = append(args, "--no-git-checks")
	}
	args = append(args, "--access="+c.cfg.access)
	if c.cfg.dryRun {
		args = append(args, "--dry-run")
	}
	return args
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	logger := ctxlog.From(ctx)

	cmdline := shellquote.Join(append([]string{c.cfg.command}, args...)...)
	logger.Info("running '" + cmdline + "'")

	out, err := c.cfg.runner.Run(ctx, c.cfg.dir, c.cfg.command, args...)
	if err != nil {
		return nil, err
	}

	logger.Debug("command finished", slog.String("command", cmdline), slog.Int("output_bytes", len(out)))
	return out, nil
}
