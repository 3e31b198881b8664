package cli

import (
	"context"
	"fmt"

	"github.com/publisherr/publisherr/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdTag() *cli.Command {
	return &cli.Command{
		Name:      "tag",
		Usage:     "Print the distribution tag derived from a branch name",
		ArgsUsage: "[BRANCH]",
		Action: func(ctx context.Context, c *cli.Command) error {
			branch := c.Args().First()
			if branch == "" {
				branches, err := loadBranches()
				if err != nil {
					return err
				}
				branch = branches.Current
			}

			_, err := fmt.Fprintln(c.Root().Writer, model.BranchTag(branch))
			return err
		},
	}
}
