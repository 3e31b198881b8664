package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/publisherr/publisherr/pkg/cli/config"
	"github.com/publisherr/publisherr/pkg/domain/types"
	"github.com/publisherr/publisherr/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	a := newApp()
	defer a.sentryCfg.Flush()

	if err := a.cmd.Run(ctx, args); err != nil {
		logger := a.logger
		if logger == nil {
			logger = slog.Default()
		}
		errutil.Handle(ctxlog.With(ctx, logger), err)
		return err
	}

	return nil
}

type app struct {
	cmd       *cli.Command
	loggerCfg config.Logger
	sentryCfg config.Sentry
	logger    *slog.Logger // set by the Before hook
}

func newApp() *app {
	a := &app{}

	a.cmd = &cli.Command{
		Name:    types.AppName,
		Usage:   "Publish branch prerelease versions to a package registry",
		Version: types.Version,
		Flags:   append(a.loggerCfg.Flags(), a.sentryCfg.Flags()...),
		Before:  a.before,
		Commands: []*cli.Command{
			cmdPublish(),
			cmdTag(),
			cmdNextVersion(),
		},
	}

	return a
}

func (a *app) before(ctx context.Context, c *cli.Command) (context.Context, error) {
	logger, err := a.loggerCfg.Configure(c.Root().ErrWriter)
	if err != nil {
		return nil, err
	}
	a.logger = logger.With("run_id", uuid.NewString())

	slog.SetDefault(a.logger)
	ctx = ctxlog.With(ctx, a.logger)

	if err := a.sentryCfg.Configure(); err != nil {
		return nil, err
	}

	a.logger.Debug("Configured publisherr",
		"version", types.Version,
		"sentry", a.sentryCfg,
	)

	return ctx, nil
}
