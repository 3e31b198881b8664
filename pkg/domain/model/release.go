package model

// Release describes the prerelease computed for a branch
type Release struct {
	Package        string        // Package name from the manifest
	Tag            string        // Distribution tag derived from the branch
	CurrentVersion string        // Version currently behind the tag
	Source         VersionSource // Where CurrentVersion was resolved from
	NextVersion    string        // Version to publish
}

// PublishResult represents what a publish run did
type PublishResult struct {
	Channel   Channel
	Release   *Release // nil unless the alpha channel ran
	Published bool
}
