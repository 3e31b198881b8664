package model

// Manifest is the subset of package.json publisherr cares about
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
