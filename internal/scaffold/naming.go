package scaffold

import (
	"strings"
	"unicode"
)

// PascalName converts a kebab-case example name to a PascalCase identifier,
// e.g. "encrypted-counter" -> "EncryptedCounter". Every generated artifact
// that references the contract name (Solidity identifier, test describe
// title, filenames, README) goes through this one transform so the
// identifiers agree across the project.
func PascalName(kebab string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range kebab {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
