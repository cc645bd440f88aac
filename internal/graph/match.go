package graph

import (
	"regexp"

	"github.com/ocarlier/drugmentions/internal/publication"
)

// Build scans every (drug, publication) pair and records a mention wherever
// the drug name occurs in the normalized title as a whole word.
//
// The scan is deliberately quadratic in drugs x publications; at the target
// scale (thousands of records) this is cheaper than maintaining an inverted
// index with equivalent word-boundary semantics. See the README's
// scalability notes before changing this.
func Build(drugs []publication.Drug, pubs []publication.Publication) *Graph {
	g := New()

	for _, drug := range drugs {
		if drug.Name == "" {
			continue
		}
		pattern := wordPattern(drug.Name)

		for _, pub := range pubs {
			// Empty normalized titles can never match; they are filtered
			// upstream but skipping here keeps Build total over any input.
			if pub.NormalizedTitle == "" {
				continue
			}
			if !pattern.MatchString(pub.NormalizedTitle) {
				continue
			}
			g.Add(drug.Name, pub.Journal, publication.Mention{
				Date:             pub.DateResolved,
				PublicationTitle: pub.OriginalTitle,
				SourceType:       pub.Source,
				SourceID:         pub.SourceID,
			})
		}
	}

	return g
}

// wordPattern compiles a whole-word pattern for a normalized drug name.
// QuoteMeta keeps any special characters embedded in the name literal. The
// explicit boundary classes replace \b: a match must sit at the string edge
// or next to a non-letter, non-digit rune, so "ace" never matches "face"
// and "rum" never matches "sérum". RE2's \b is ASCII-only and fails both
// ways on names whose edge rune is accented or non-word.
func wordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?:^|[^\p{L}\p{N}])` + regexp.QuoteMeta(name) + `(?:[^\p{L}\p{N}]|$)`,
	)
}
