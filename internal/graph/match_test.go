package graph

import (
	"testing"

	"github.com/ocarlier/drugmentions/internal/publication"
)

func pub(id, normTitle, origTitle, journal, date string, src publication.SourceType) publication.Publication {
	return publication.Publication{
		SourceID:        id,
		OriginalTitle:   origTitle,
		NormalizedTitle: normTitle,
		DateResolved:    date,
		Journal:         journal,
		Source:          src,
	}
}

func TestBuild_SimpleMatch(t *testing.T) {
	drugs := []publication.Drug{{Name: "aspirin"}}
	pubs := []publication.Publication{
		pub("pub1", "a study on aspirin benefits", "A Study on Aspirin Benefits",
			"journal of medicine", "2020-01-01", publication.SourcePubMedCSV),
	}

	g := Build(drugs, pubs)

	if got := g.Drugs(); len(got) != 1 || got[0] != "aspirin" {
		t.Fatalf("Drugs() = %v, want [aspirin]", got)
	}
	if got := g.Journals("aspirin"); len(got) != 1 || got[0] != "journal of medicine" {
		t.Fatalf("Journals(aspirin) = %v", got)
	}
	ms := g.Mentions("aspirin", "journal of medicine")
	if len(ms) != 1 {
		t.Fatalf("Mentions() = %v, want one mention", ms)
	}
	want := publication.Mention{
		Date:             "2020-01-01",
		PublicationTitle: "A Study on Aspirin Benefits",
		SourceType:       publication.SourcePubMedCSV,
		SourceID:         "pub1",
	}
	if ms[0] != want {
		t.Errorf("mention = %+v, want %+v", ms[0], want)
	}
}

func TestBuild_NoMatchMeansAbsent(t *testing.T) {
	drugs := []publication.Drug{{Name: "ibuprofen"}}
	pubs := []publication.Publication{
		pub("pub1", "a study on aspirin benefits", "A Study on Aspirin Benefits",
			"journal of medicine", "2020-01-01", publication.SourcePubMedCSV),
	}

	g := Build(drugs, pubs)
	if g.Len() != 0 {
		t.Errorf("graph has %d drugs, want 0 (sparse representation)", g.Len())
	}
	if js := g.Journals("ibuprofen"); js != nil {
		t.Errorf("Journals(ibuprofen) = %v, want nil", js)
	}
}

func TestBuild_WholeWordBoundary(t *testing.T) {
	tests := []struct {
		name  string
		title string
		match bool
	}{
		{"substring of longer word", "study of face creams", false},
		{"word at start", "ace inhibitor trial results", true},
		{"word at end", "a trial of ace", true},
		{"word in middle", "use of ace in patients", true},
		{"punctuation boundary", "efficacy of ace, continued", true},
		{"embedded with suffix", "tracers in plasma", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drugs := []publication.Drug{{Name: "ace"}}
			pubs := []publication.Publication{
				pub("p", tt.title, tt.title, "j", "2020-01-01", publication.SourcePubMedCSV),
			}
			g := Build(drugs, pubs)
			if got := g.Len() == 1; got != tt.match {
				t.Errorf("match(%q) = %v, want %v", tt.title, got, tt.match)
			}
		})
	}
}

func TestBuild_SpecialCharactersLiteral(t *testing.T) {
	// Characters with regexp meaning in the drug name must match literally.
	drugs := []publication.Drug{{Name: "vitamin b12 (oral)"}}
	pubs := []publication.Publication{
		pub("p1", "dosing of vitamin b12 (oral) supplements", "X", "j", "2020-01-01", publication.SourcePubMedCSV),
		pub("p2", "dosing of vitamin b12 oral supplements", "X", "j", "2020-01-01", publication.SourcePubMedCSV),
	}

	g := Build(drugs, pubs)
	if g.Len() != 1 {
		t.Fatalf("graph has %d drugs, want 1", g.Len())
	}
	if ms := g.Mentions("vitamin b12 (oral)", "j"); len(ms) != 1 || ms[0].SourceID != "p1" {
		t.Errorf("Mentions() = %v, want only p1 (parentheses literal)", ms)
	}
}

func TestBuild_NameWithNonWordEdgeMatchesAtTitleEnd(t *testing.T) {
	// A name ending in a non-word rune still matches at the end of a title.
	drugs := []publication.Drug{{Name: "vitamin b12 (oral)"}}
	pubs := []publication.Publication{
		pub("p1", "a trial of vitamin b12 (oral)", "X", "j", "2020-01-01", publication.SourcePubMedCSV),
	}

	g := Build(drugs, pubs)
	if g.Len() != 1 {
		t.Fatalf("graph has %d drugs, want 1", g.Len())
	}
}

func TestBuild_UnicodeWordBoundary(t *testing.T) {
	// Word boundaries are defined by non-alphanumeric runes, not ASCII. An
	// accented letter is alphanumeric, so it never delimits a word and never
	// blocks a match inside an accented name.
	tests := []struct {
		name  string
		drug  string
		title string
		match bool
	}{
		{"ascii name inside accented word", "rum", "sérum study", false},
		{"ascii name inside accented word at end", "rum", "analysis du sérum", false},
		{"accented name matches", "épinéphrine", "épinéphrine in cardiac arrest", true},
		{"accented name at end", "épinéphrine", "racemic épinéphrine", true},
		{"accented name with suffix", "épinéphrine", "épinéphrines compared", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drugs := []publication.Drug{{Name: tt.drug}}
			pubs := []publication.Publication{
				pub("p", tt.title, tt.title, "j", "2020-01-01", publication.SourcePubMedCSV),
			}
			g := Build(drugs, pubs)
			if got := g.Len() == 1; got != tt.match {
				t.Errorf("match(%q in %q) = %v, want %v", tt.drug, tt.title, got, tt.match)
			}
		})
	}
}

func TestBuild_EmptyTitleNeverMatches(t *testing.T) {
	drugs := []publication.Drug{{Name: "aspirin"}}
	pubs := []publication.Publication{
		pub("p1", "", "Original Title That Normalized To Nothing?", "j", "2020-01-01", publication.SourcePubMedCSV),
	}

	if g := Build(drugs, pubs); g.Len() != 0 {
		t.Errorf("graph has %d drugs, want 0 for empty normalized titles", g.Len())
	}
}

func TestBuild_SharedPlaceholderJournalMerges(t *testing.T) {
	drugs := []publication.Drug{{Name: "aspirin"}}
	pubs := []publication.Publication{
		pub("p1", "aspirin study one", "Aspirin Study One", "unknown_journal", "2020-01-01", publication.SourcePubMedCSV),
		pub("p2", "aspirin study two", "Aspirin Study Two", "unknown_journal", "2020-02-01", publication.SourcePubMedJSON),
	}

	g := Build(drugs, pubs)
	if js := g.Journals("aspirin"); len(js) != 1 || js[0] != "unknown_journal" {
		t.Fatalf("Journals() = %v, want single unknown_journal bucket", js)
	}
	if ms := g.Mentions("aspirin", "unknown_journal"); len(ms) != 2 {
		t.Errorf("Mentions() = %d, want 2 merged under the placeholder", len(ms))
	}
}

func TestBuild_DuplicateMentionNotRepeated(t *testing.T) {
	drugs := []publication.Drug{{Name: "aspirin"}}
	p := pub("p1", "aspirin study", "Aspirin Study", "j", "2020-01-01", publication.SourcePubMedCSV)
	g := Build(drugs, []publication.Publication{p, p})

	if ms := g.Mentions("aspirin", "j"); len(ms) != 1 {
		t.Errorf("Mentions() = %d, want 1 (identical mention deduplicated)", len(ms))
	}
}

func TestBuild_DeterministicOrder(t *testing.T) {
	drugs := []publication.Drug{{Name: "zinc"}, {Name: "aspirin"}}
	pubs := []publication.Publication{
		pub("p1", "zinc and aspirin combined", "T1", "journal b", "2020-01-01", publication.SourcePubMedCSV),
		pub("p2", "aspirin and zinc revisited", "T2", "journal a", "2020-02-01", publication.SourcePubMedCSV),
	}

	g := Build(drugs, pubs)

	// Drug order follows the drug list, journal order follows publication order.
	if got := g.Drugs(); got[0] != "zinc" || got[1] != "aspirin" {
		t.Errorf("Drugs() = %v, want [zinc aspirin]", got)
	}
	if got := g.Journals("zinc"); got[0] != "journal b" || got[1] != "journal a" {
		t.Errorf("Journals(zinc) = %v, want [journal b, journal a]", got)
	}
}
