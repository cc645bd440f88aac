// Package publication defines the core domain types for the mention pipeline.
package publication

// SourceType identifies the origin of a publication record. The set is
// closed: these exact values appear in the output document.
type SourceType string

const (
	SourcePubMedCSV      SourceType = "pubmed_csv"
	SourcePubMedJSON     SourceType = "pubmed_json"
	SourceClinicalTrials SourceType = "clinical_trials_csv"
)

// Drug is one row of the drug list. Name is the normalized (lowercase,
// trimmed) drug name and serves as the matching key and the graph's
// top-level key.
type Drug struct {
	Name    string `json:"drug"`
	ATCCode string `json:"atccode"` // Opaque identifier, not used for matching
}

// Publication is the unified record shape every loader produces, whatever
// the source looked like. After loading, SourceID, Journal, and DateResolved
// are never empty: sentinels and placeholders fill the gaps.
type Publication struct {
	SourceID        string     `json:"source_id"`        // Original id or generated placeholder
	OriginalTitle   string     `json:"original_title"`   // Verbatim, preserved for output
	NormalizedTitle string     `json:"normalized_title"` // Lowercase/trimmed, used only for matching
	DateRaw         string     `json:"date_raw"`         // Date field as received
	DateResolved    string     `json:"date_resolved"`    // YYYY-MM-DD, comma-stripped original, or sentinel
	Journal         string     `json:"journal"`          // Normalized journal name or placeholder
	Source          SourceType `json:"source_type"`
}

// Mention is one recorded occurrence of a drug name inside a publication
// title. Field order here is the field order in the output document.
type Mention struct {
	Date             string     `json:"date"`
	PublicationTitle string     `json:"publication_title"`
	SourceType       SourceType `json:"source_type"`
	SourceID         string     `json:"source_id"`
}
