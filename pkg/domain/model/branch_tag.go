package model

import (
	"strings"
	"unicode"
)

// BranchTag formats a branch name into a valid distribution tag.
// The name is lowercased, every rune outside [a-z0-9:] becomes '-' and
// leading or trailing '-' are trimmed.
func BranchTag(branch string) string {
	mapped := strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9', r == ':':
			return r
		default:
			return '-'
		}
	}, branch)

	return strings.Trim(mapped, "-")
}
