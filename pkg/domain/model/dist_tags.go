package model

import "github.com/publisherr/publisherr/pkg/domain/types"

// VersionSource tells where a resolved current version came from
type VersionSource string

const (
	VersionSourceTag      VersionSource = "tag"
	VersionSourceLatest   VersionSource = "latest"
	VersionSourceFallback VersionSource = "fallback"
)

// DistTags maps registry distribution tags to published versions
type DistTags map[string]string

// Resolve looks up the version for tag, falling back to the latest tag and
// then to types.FallbackVersion. Tags mapped to an empty version count as absent.
func (t DistTags) Resolve(tag string) (string, VersionSource) {
	if v := t[tag]; v != "" {
		return v, VersionSourceTag
	}
	if v := t[types.DistTagLatest]; v != "" {
		return v, VersionSourceLatest
	}
	return types.FallbackVersion, VersionSourceFallback
}
