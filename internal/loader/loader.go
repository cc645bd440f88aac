// Package loader reads the raw source files and emits unified publications.
package loader

import (
	"fmt"
	"strings"

	"github.com/ocarlier/drugmentions/internal/config"
	"github.com/ocarlier/drugmentions/internal/publication"
	"github.com/ocarlier/drugmentions/internal/textutil"
)

// Loader turns one source file into unified publications. Implementations
// return per-record errors alongside whatever loaded cleanly: a malformed
// record never aborts the rest of its file. A file-level failure (missing or
// unreadable source) yields no publications and a single error.
type Loader interface {
	Source() publication.SourceType
	Load(path string) ([]publication.Publication, []error)
}

// entry carries one raw record's fields into the shared builder.
type entry struct {
	id      string
	title   string
	journal string
	date    string
}

// build applies the normalization and placeholder policy shared by every
// source: a synthesized id when the original is empty, the journal
// placeholder, the date sentinel for a date field that resolves to nothing,
// and a normalized
// copy of the title next to the verbatim original.
func build(e entry, src publication.SourceType, index int, s config.Sentinels) publication.Publication {
	id := strings.TrimSpace(e.id)
	if id == "" {
		// The monotonic index keeps generated ids unique within one load pass.
		id = fmt.Sprintf("%s_item_%d_no_id", src, index)
	}

	journal := textutil.Normalize(e.journal)
	if journal == "" {
		journal = s.Journal
	}

	// The resolved date is never empty: a field that is blank, or that
	// reduces to nothing once commas and whitespace are stripped, takes the
	// sentinel.
	date := s.Date
	if parsed := textutil.ParseDate(e.date); parsed != "" {
		date = parsed
	}

	return publication.Publication{
		SourceID:        id,
		OriginalTitle:   e.title,
		NormalizedTitle: textutil.Normalize(e.title),
		DateRaw:         e.date,
		DateResolved:    date,
		Journal:         journal,
		Source:          src,
	}
}
