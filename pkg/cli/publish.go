package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/publisherr/publisherr/pkg/cli/config"
	"github.com/publisherr/publisherr/pkg/domain/interfaces"
	"github.com/publisherr/publisherr/pkg/domain/model"
	"github.com/publisherr/publisherr/pkg/infra/manifest"
	"github.com/publisherr/publisherr/pkg/infra/pkgmgr"
	"github.com/publisherr/publisherr/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// newRunner creates the command runner of the package manager client
var newRunner = pkgmgr.NewExecRunner

// loadBranches reads the branch triple of the pipeline
var loadBranches = config.LoadBranches

func cmdPublish() *cli.Command {
	var registryCfg config.Registry

	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"p"},
		Usage:   "Publish the next prerelease of the current branch under its distribution tag",
		Flags:   registryCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newPublishUseCase(ctx, c, &registryCfg)
			if err != nil {
				return err
			}

			branches, err := loadBranches()
			if err != nil {
				return err
			}

			result, err := uc.Publish(ctx, branches)
			if err != nil {
				return goerr.Wrap(err, "failed to publish")
			}

			printResult(c.Root().Writer, result, registryCfg.DryRun)
			return nil
		},
	}
}

// newPublishUseCase applies the config file and wires the package manager and manifest
func newPublishUseCase(ctx context.Context, c *cli.Command, registryCfg *config.Registry) (interfaces.PublishUseCase, error) {
	if err := registryCfg.LoadFile(c.IsSet); err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Debug("Registry configuration",
		"package_manager", registryCfg.PackageManager,
		"access", registryCfg.Access,
		"dir", registryCfg.Dir,
		"dry_run", registryCfg.DryRun,
	)

	pm, err := pkgmgr.New(
		pkgmgr.WithCommand(registryCfg.PackageManager),
		pkgmgr.WithAccess(registryCfg.Access),
		pkgmgr.WithDir(registryCfg.Dir),
		pkgmgr.WithDryRun(registryCfg.DryRun),
		pkgmgr.WithRunner(newRunner()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create package manager client")
	}

	return usecase.NewPublish(pm, manifest.New(registryCfg.Dir)), nil
}

func printResult(w io.Writer, result *model.PublishResult, dryRun bool) {
	if !result.Published {
		_, _ = color.New(color.FgYellow).Fprintf(w, "nothing published (channel: %s)\n", result.Channel)
		return
	}

	r := result.Release
	verb := "published"
	if dryRun {
		verb = "dry-run published"
	}
	_, _ = color.New(color.FgGreen, color.Bold).Fprintf(w, "%s %s@%s", verb, r.Package, r.NextVersion)
	_, _ = fmt.Fprintf(w, " under tag %s (previous %s from %s)\n", r.Tag, r.CurrentVersion, r.Source)
}
