package textutil

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// placeholderPattern matches names in square brackets, as in "Dear [name]".
var placeholderPattern = regexp.MustCompile(`\[(\w*?)\]`)

// Similarity scores a and b from 0 to 1 by case-insensitive edit distance,
// relative to the longer string. Two empty strings are identical.
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return float64(longest-levenshtein.ComputeDistance(a, b)) / float64(longest)
}

// Summary returns the first n runes of s. Non-positive n yields "".
func Summary(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// MatchPlaceholders returns the distinct bracketed names in text, sorted.
// Empty brackets are ignored.
func MatchPlaceholders(text string) []string {
	return MatchPlaceholdersWith(placeholderPattern, text)
}

// MatchPlaceholdersWith is MatchPlaceholders with a custom pattern. The first
// capture group names the placeholder; without one the whole match does.
func MatchPlaceholdersWith(pattern *regexp.Regexp, text string) []string {
	group := 0
	if pattern.NumSubexp() > 0 {
		group = 1
	}

	var names []string
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if m[group] != "" {
			names = append(names, m[group])
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
