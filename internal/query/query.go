// Package query answers ad-hoc questions about a generated mention graph.
//
// The graph is loaded into an in-memory SQLite database so the questions can
// be phrased as SQL instead of hand-rolled map walks. Nothing is persisted:
// the database lives and dies with the Store.
package query

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ocarlier/drugmentions/internal/graph"
	"github.com/ocarlier/drugmentions/internal/textutil"
)

// pubmedPattern selects mentions originating from either PubMed source.
const pubmedPattern = "pubmed%"

// Store holds a graph's mentions in an in-memory SQLite table, one row per
// mention, inserted in graph order so rowid reflects first-encountered
// position for tie-breaking.
type Store struct {
	db *sql.DB
}

// Open loads g into a fresh in-memory database.
func Open(g *graph.Graph) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes; a second connection would
	// also get its own empty :memory: database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE mentions (
  drug TEXT NOT NULL,
  journal TEXT NOT NULL,
  date TEXT NOT NULL,
  title TEXT NOT NULL,
  source_type TEXT NOT NULL,
  source_id TEXT NOT NULL
)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating mentions table: %w", err)
	}

	stmt, err := db.Prepare(`INSERT INTO mentions (drug, journal, date, title, source_type, source_id)
VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, drug := range g.Drugs() {
		for _, journal := range g.Journals(drug) {
			for _, m := range g.Mentions(drug, journal) {
				if _, err := stmt.Exec(drug, journal, m.Date, m.PublicationTitle, string(m.SourceType), m.SourceID); err != nil {
					db.Close()
					return nil, fmt.Errorf("loading mention for %q: %w", drug, err)
				}
			}
		}
	}

	return &Store{db: db}, nil
}

// Close releases the in-memory database.
func (s *Store) Close() error {
	return s.db.Close()
}

// TopJournal returns the journal that mentions the most distinct drugs,
// with the count. Ties resolve to the journal encountered first in graph
// order. An empty graph yields an empty name and zero count, not an error.
func (s *Store) TopJournal() (string, int, error) {
	row := s.db.QueryRow(`SELECT journal, COUNT(DISTINCT drug) AS drugs
FROM mentions
GROUP BY journal
ORDER BY drugs DESC, MIN(rowid) ASC
LIMIT 1`)

	var journal string
	var count int
	if err := row.Scan(&journal, &count); err != nil {
		if err == sql.ErrNoRows {
			return "", 0, nil
		}
		return "", 0, fmt.Errorf("querying top journal: %w", err)
	}
	return journal, count, nil
}

// RelatedDrugs returns the drugs other than target mentioned via
// PubMed-sourced publications in journals where target also has a
// PubMed-sourced mention. The target name is normalized before lookup; an
// unknown target yields an empty result, not an error.
func (s *Store) RelatedDrugs(target string) ([]string, error) {
	target = textutil.Normalize(target)

	rows, err := s.db.Query(`SELECT m.drug
FROM mentions m
WHERE m.source_type LIKE ?
  AND m.drug <> ?
  AND m.journal IN (
    SELECT journal FROM mentions
    WHERE drug = ? AND source_type LIKE ?
  )
GROUP BY m.drug
ORDER BY MIN(m.rowid) ASC`, pubmedPattern, target, target, pubmedPattern)
	if err != nil {
		return nil, fmt.Errorf("querying related drugs: %w", err)
	}
	defer rows.Close()

	var related []string
	for rows.Next() {
		var drug string
		if err := rows.Scan(&drug); err != nil {
			return nil, fmt.Errorf("scanning related drug: %w", err)
		}
		related = append(related, drug)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading related drugs: %w", err)
	}
	return related, nil
}
