package loader

import (
	"fmt"

	"github.com/ocarlier/drugmentions/internal/config"
	"github.com/ocarlier/drugmentions/internal/publication"
)

// ClinicalTrialsLoader loads the clinical trials delimited-text source.
// Trial exports title their records under scientific_title and often carry a
// leading BOM, which readRows strips.
type ClinicalTrialsLoader struct {
	Sentinels config.Sentinels
}

func (ClinicalTrialsLoader) Source() publication.SourceType {
	return publication.SourceClinicalTrials
}

func (l ClinicalTrialsLoader) Load(path string) ([]publication.Publication, []error) {
	rows, errs := readRows(path)
	if rows == nil && len(errs) > 0 {
		return nil, errs
	}
	for i, err := range errs {
		errs[i] = fmt.Errorf("%s: %w", l.Source(), err)
	}

	pubs := make([]publication.Publication, 0, len(rows))
	for i, row := range rows {
		pubs = append(pubs, build(entry{
			id:      row["id"],
			title:   row["scientific_title"],
			journal: row["journal"],
			date:    row["date"],
		}, l.Source(), i, l.Sentinels))
	}

	return pubs, errs
}
