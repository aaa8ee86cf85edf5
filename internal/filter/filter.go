// Package filter holds the shared predicate helpers used by the
// per-collection list filters. Criteria are user input: a helper never
// returns an error, it reports whether the criterion applies at all.
package filter

import (
	"strconv"
	"strings"
	"time"
)

// Applied reports whether a criterion value is set. The empty string and
// the "all" sentinel both mean the criterion is not applied.
func Applied(v string) bool {
	return v != "" && v != "all"
}

// FoldContains reports whether needle is a case-insensitive substring of
// haystack. Case folding only; diacritics are not folded.
func FoldContains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Bound parses a numeric range bound. A value that is absent or does not
// parse as an integer disables that side of the range.
func Bound(v string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// dateLayouts are the input formats accepted for a date criterion.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// Date normalizes a date criterion to YYYY-MM-DD. A value that matches
// no accepted layout disables the criterion.
func Date(v string) (string, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
