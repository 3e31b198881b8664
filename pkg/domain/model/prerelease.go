package model

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrInvalidVersion is returned when the current version is not semver
	ErrInvalidVersion = goerr.New("invalid version")

	// ErrInvalidPrereleaseID is returned when the tag can not be used as prerelease identifier
	ErrInvalidPrereleaseID = goerr.New("invalid prerelease identifier")
)

// NextPrerelease returns the next prerelease version of current using id as
// prerelease identifier.
//
//	1.2.3          -> 1.2.4-id.0
//	1.2.4-id.0     -> 1.2.4-id.1
//	1.2.4-other.5  -> 1.2.4-id.0
//
// Build metadata is dropped.
func NextPrerelease(current, id string) (string, error) {
	if id == "" {
		return "", goerr.Wrap(ErrInvalidPrereleaseID, "identifier is empty")
	}

	v, err := semver.StrictNewVersion(strings.TrimLeft(strings.TrimSpace(current), "=v"))
	if err != nil {
		return "", goerr.Wrap(ErrInvalidVersion, err.Error(), goerr.V("version", current))
	}

	if v.Prerelease() == "" {
		next := v.IncPatch()
		v = &next
	}

	pre := bumpIdentifiers(splitIdentifiers(v.Prerelease()))
	if pre[0] != id || len(pre) < 2 || !isNumeric(pre[1]) {
		pre = []string{id, "0"}
	}

	next, err := v.SetMetadata("")
	if err != nil {
		return "", goerr.Wrap(err, "failed to drop build metadata", goerr.V("version", current))
	}
	next, err = next.SetPrerelease(strings.Join(pre, "."))
	if err != nil {
		return "", goerr.Wrap(ErrInvalidPrereleaseID, err.Error(), goerr.V("identifier", id))
	}

	return next.String(), nil
}

func splitIdentifiers(pre string) []string {
	if pre == "" {
		return nil
	}
	return strings.Split(pre, ".")
}

// bumpIdentifiers increments the last numeric identifier, appending 0 when
// there is none.
func bumpIdentifiers(ids []string) []string {
	for i := len(ids) - 1; i >= 0; i-- {
		if !isNumeric(ids[i]) {
			continue
		}
		n, err := strconv.ParseUint(ids[i], 10, 64)
		if err != nil {
			continue
		}
		ids[i] = strconv.FormatUint(n+1, 10)
		return ids
	}
	return append(ids, "0")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
