package model

// Channel represents the release policy selected for a pipeline run
type Channel string

const (
	ChannelLatest Channel = "latest"
	ChannelAlpha  Channel = "alpha"
	ChannelNone   Channel = "none"
)

// Branches holds the pull request relevant branches of a pipeline run
type Branches struct {
	Default string // Repository default branch
	Base    string // Branch the pull request targets
	Current string // Branch the pull request comes from
}

// Channel decides which release policy applies to the branches
func (b *Branches) Channel() Channel {
	switch {
	case b.Current == b.Default:
		return ChannelLatest
	case b.Base == b.Default:
		return ChannelAlpha
	default:
		return ChannelNone
	}
}
