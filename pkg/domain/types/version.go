package types

// Version is the publisherr build version, set via -ldflags at release time
var Version = "dev"

const (
	// AppName is used as log prefix and Sentry server name
	AppName = "publisherr"

	// DistTagLatest is the distribution tag every registry maintains for the newest stable release
	DistTagLatest = "latest"

	// FallbackVersion is the current version assumed when the registry knows nothing about the package
	FallbackVersion = "0.0.0"
)
