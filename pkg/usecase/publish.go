package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/publisherr/publisherr/pkg/domain/interfaces"
	"github.com/publisherr/publisherr/pkg/domain/model"
	"github.com/publisherr/publisherr/pkg/domain/types"
)

type publishUseCase struct {
	packageManager interfaces.PackageManager
	manifest       interfaces.ManifestRepository
}

// NewPublish creates a new instance of PublishUseCase
func NewPublish(packageManager interfaces.PackageManager, manifest interfaces.ManifestRepository) interfaces.PublishUseCase {
	return &publishUseCase{
		packageManager: packageManager,
		manifest:       manifest,
	}
}

// Publish selects the release channel for branches and runs it
func (uc *publishUseCase) Publish(ctx context.Context, branches *model.Branches) (*model.PublishResult, error) {
	logger := ctxlog.From(ctx)

	channel := branches.Channel()
	logger.Info("Selected release channel",
		"channel", channel,
		"default_branch", branches.Default,
		"base_branch", branches.Base,
		"current_branch", branches.Current,
	)

	result := &model.PublishResult{Channel: channel}

	switch channel {
	case model.ChannelLatest:
		logger.Info("latest release not implemented yet")
		return result, nil

	case model.ChannelAlpha:
		release, err := uc.publishAlpha(ctx, branches.Current)
		if err != nil {
			return nil, err
		}
		result.Release = release
		result.Published = true
		return result, nil

	default:
		// TODO: publish beta
		logger.Info("No release policy for branches, nothing to publish")
		return result, nil
	}
}

// publishAlpha bumps the manifest to the next prerelease of the branch tag and publishes it
func (uc *publishUseCase) publishAlpha(ctx context.Context, branch string) (*model.Release, error) {
	tag := model.BranchTag(branch)
	if tag == "" {
		return nil, goerr.New("branch name yields an empty distribution tag", goerr.V("branch", branch))
	}

	release, err := uc.PrepareRelease(ctx, tag)
	if err != nil {
		return nil, err
	}

	if err := uc.packageManager.SetVersion(ctx, release.NextVersion); err != nil {
		return nil, goerr.Wrap(err, "failed to bump package version", goerr.V("version", release.NextVersion))
	}

	if err := uc.packageManager.Publish(ctx, tag); err != nil {
		return nil, goerr.Wrap(err, "failed to publish alpha release",
			goerr.V("package", release.Package),
			goerr.V("version", release.NextVersion),
			goerr.V("tag", tag),
		)
	}

	ctxlog.From(ctx).Info("Published alpha release",
		"package", release.Package,
		"version", release.NextVersion,
		"tag", tag,
	)

	return release, nil
}

// PrepareRelease computes the next prerelease of the manifest package for tag
func (uc *publishUseCase) PrepareRelease(ctx context.Context, tag string) (*model.Release, error) {
	m, err := uc.manifest.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load manifest")
	}

	current, source := ResolveCurrentVersion(ctx, uc.packageManager, m.Name, tag)

	next, err := model.NextPrerelease(current, tag)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute next prerelease version",
			goerr.V("current", current),
			goerr.V("tag", tag),
		)
	}

	ctxlog.From(ctx).Info("Computed next prerelease version",
		"package", m.Name,
		"tag", tag,
		"current", current,
		"source", source,
		"next", next,
	)

	return &model.Release{
		Package:        m.Name,
		Tag:            tag,
		CurrentVersion: current,
		Source:         source,
		NextVersion:    next,
	}, nil
}

// ResolveCurrentVersion returns the registry version behind tag, falling back
// to the latest tag and then to types.FallbackVersion. Lookup failures are
// logged and treated as an unpublished package.
func ResolveCurrentVersion(ctx context.Context, pm interfaces.PackageManager, packageName, tag string) (string, model.VersionSource) {
	logger := ctxlog.From(ctx)

	tags, err := pm.DistTags(ctx, packageName)
	if err != nil {
		logger.Warn("package was not found in registry",
			"package", packageName,
			"error", err,
		)
		logger.Info("current version defaulting to version '" + types.FallbackVersion + "'")
		return types.FallbackVersion, model.VersionSourceFallback
	}

	version, source := tags.Resolve(tag)
	switch source {
	case model.VersionSourceLatest:
		logger.Info("dist-tag '"+tag+"' was not found, defaulting to 'latest' version", "version", version)
	case model.VersionSourceFallback:
		logger.Info("dist-tag 'latest' was not found, current version defaulting to version '" + types.FallbackVersion + "'")
	}

	return version, source
}
