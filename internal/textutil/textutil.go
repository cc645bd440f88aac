// Package textutil provides the text normalization and date parsing helpers
// shared by the record loaders.
package textutil

import (
	"strings"
	"time"
)

// ISODate is the canonical layout for resolved dates.
const ISODate = "2006-01-02"

// DateLayouts is the ordered list of layouts ParseDate tries; the first full
// match wins. Day-first is deliberately ahead of month-first so an ambiguous
// slash date like "03/04/2025" resolves to April 3rd rather than March 4th.
// The order is an output-compatibility policy: do not reorder.
var DateLayouts = []string{
	"2/1/2006",       // 15/01/2020
	"1/2/2006",       // 01/15/2020
	"2006-1-2",       // 2020-01-15
	"2006-2-1",       // 2020-15-01 (uncommon, kept for input compatibility)
	"2 January 2006", // 1 January 2020
	"January 2 2006", // January 1 2020 (comma already stripped)
	"2 Jan 2006",     // 1 Jan 2020
	"Jan 2 2006",     // Jan 1 2020
}

// Normalize lower-cases s and strips leading and trailing whitespace. It is
// total over any string input and idempotent.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseDate strips commas and surrounding whitespace from raw, then tries
// each layout in DateLayouts. A successful parse is reformatted to
// YYYY-MM-DD regardless of the layout that matched. If nothing matches, the
// processed (comma-stripped, trimmed) string is returned unchanged.
//
// ParseDate never substitutes a sentinel: it returns the empty string for
// input that reduces to nothing, and deciding what a missing date means
// belongs to the caller.
func ParseDate(raw string) string {
	processed := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, processed); err == nil {
			return t.Format(ISODate)
		}
	}
	return processed
}
