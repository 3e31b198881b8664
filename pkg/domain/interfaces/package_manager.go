package interfaces

import (
	"context"

	"github.com/publisherr/publisherr/pkg/domain/model"
)

// PackageManager defines operations publisherr delegates to the package manager CLI
type PackageManager interface {
	// DistTags fetches all distribution tags of a package from the registry
	DistTags(ctx context.Context, packageName string) (model.DistTags, error)

	// SetVersion writes version into the manifest without creating a git tag
	SetVersion(ctx context.Context, version string) error

	// Publish publishes the package under the given distribution tag
	Publish(ctx context.Context, tag string) error
}

// ManifestRepository reads the package manifest
type ManifestRepository interface {
	Load(ctx context.Context) (*model.Manifest, error)
}
