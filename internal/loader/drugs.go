package loader

import (
	"fmt"

	"github.com/ocarlier/drugmentions/internal/publication"
	"github.com/ocarlier/drugmentions/internal/textutil"
)

// DrugsLoader reads the drug list CSV (atccode, drug columns).
type DrugsLoader struct{}

// Load reads the drug list, normalizes every name, and drops empties and
// duplicates. The first occurrence of a name wins so downstream iteration
// order stays stable across runs.
func (DrugsLoader) Load(path string) ([]publication.Drug, []error) {
	rows, errs := readRows(path)
	if rows == nil && len(errs) > 0 {
		return nil, errs
	}
	for i, err := range errs {
		errs[i] = fmt.Errorf("drugs: %w", err)
	}

	seen := make(map[string]bool)
	var drugs []publication.Drug
	for _, row := range rows {
		name := textutil.Normalize(row["drug"])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		drugs = append(drugs, publication.Drug{
			Name:    name,
			ATCCode: row["atccode"],
		})
	}

	return drugs, errs
}
