package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/publisherr/publisherr/pkg/cli/config"
	"github.com/publisherr/publisherr/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdNextVersion() *cli.Command {
	var (
		registryCfg config.Registry
		tag         string
	)

	flags := append(registryCfg.Flags(), &cli.StringFlag{
		Name:        "tag",
		Aliases:     []string{"t"},
		Usage:       "Distribution tag, derived from the current branch if empty",
		Destination: &tag,
	})

	return &cli.Command{
		Name:  "next-version",
		Usage: "Print the prerelease version publish would release, without publishing",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newPublishUseCase(ctx, c, &registryCfg)
			if err != nil {
				return err
			}

			if tag == "" {
				branches, err := loadBranches()
				if err != nil {
					return err
				}
				tag = model.BranchTag(branches.Current)
			}
			if tag == "" {
				return goerr.New("distribution tag is empty")
			}

			release, err := uc.PrepareRelease(ctx, tag)
			if err != nil {
				return goerr.Wrap(err, "failed to prepare release", goerr.V("tag", tag))
			}

			_, err = fmt.Fprintln(c.Root().Writer, release.NextVersion)
			return err
		},
	}
}
