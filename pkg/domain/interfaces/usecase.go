package interfaces

import (
	"context"

	"github.com/publisherr/publisherr/pkg/domain/model"
)

// PublishUseCase defines release operations driven by the branch triple
type PublishUseCase interface {
	// Publish selects the release channel for branches and runs it
	Publish(ctx context.Context, branches *model.Branches) (*model.PublishResult, error)

	// PrepareRelease computes the next prerelease of the manifest package for tag
	PrepareRelease(ctx context.Context, tag string) (*model.Release, error)
}
