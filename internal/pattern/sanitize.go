package pattern

import "strings"

// illegalNameChars are replaced with replacementChar in free-text values.
// The set covers both path separators plus the characters Windows rejects,
// so a rendered name is portable.
const illegalNameChars = `/\:*?"<>|`

const replacementChar = '-'

// sanitizeComponent makes a metadata value safe to embed in a file name.
// Denied characters are replaced, control characters are dropped and
// leading dots are removed so the value can never form "." or "..".
// Internal spaces are kept.
func sanitizeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x20 || r == 0x7f:
			continue
		case strings.ContainsRune(illegalNameChars, r):
			b.WriteRune(replacementChar)
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(b.String()), "."))
}
