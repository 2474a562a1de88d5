package stringutils

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// fold builds a Caser per call: a cases.Caser must not be shared between goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

// EqualFold compares using Unicode case folding.
func EqualFold(a, b string) bool {
	return fold(a) == fold(b)
}

// ReplaceFirstHyphen turns "special-attack" into "special attack".
// Only the first hyphen is replaced: "mind-blown-x" becomes "mind blown-x".
func ReplaceFirstHyphen(s string) string {
	return strings.Replace(s, "-", " ", 1)
}

// LastPathSegmentInt parses the final non-empty path segment of a resource URL,
// e.g. ".../pokemon-species/25/" yields 25.
func LastPathSegmentInt(url string) (int, bool) {
	parts := strings.FieldsFunc(url, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, false
	}
	return id, true
}
