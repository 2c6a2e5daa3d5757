package common

import (
	"strings"
	"unicode"
)

// UnknownStr is the fallback rendering for enum values outside their range.
const UnknownStr = "unknown"

// ExportName converts a catalog name like "nautical_mile" into an exported
// Go identifier like "NauticalMile". Existing capitals are preserved.
func ExportName(name string) string {
	var sb strings.Builder

	sb.Grow(len(name))

	upper := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			upper = true
		case upper:
			sb.WriteRune(unicode.ToUpper(r))

			upper = false
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}
