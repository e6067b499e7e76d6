package pattern

import (
	"path/filepath"
	"strings"
)

// nameParts are the pieces of an original filename used by {f}, {r} and {e}.
type nameParts struct {
	Prefix string
	Number string
	Ext    string
}

// splitName scans the base name of filename. The stem is split into a
// leading non-digit run and the digit run that follows it; the extension is
// everything after the last dot.
func splitName(filename string) nameParts {
	base := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	if base == "." || base == "/" {
		base = ""
	}

	stem := base
	var parts nameParts
	if dot := strings.LastIndexByte(base, '.'); dot >= 0 {
		stem = base[:dot]
		parts.Ext = base[dot+1:]
	}

	i := 0
	for i < len(stem) && !isDigit(stem[i]) {
		i++
	}
	j := i
	for j < len(stem) && isDigit(stem[j]) {
		j++
	}
	parts.Prefix = stem[:i]
	parts.Number = stem[i:j]
	return parts
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
