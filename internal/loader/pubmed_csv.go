package loader

import (
	"fmt"

	"github.com/ocarlier/drugmentions/internal/config"
	"github.com/ocarlier/drugmentions/internal/publication"
)

// PubMedCSVLoader loads the PubMed delimited-text source.
type PubMedCSVLoader struct {
	Sentinels config.Sentinels
}

func (PubMedCSVLoader) Source() publication.SourceType {
	return publication.SourcePubMedCSV
}

func (l PubMedCSVLoader) Load(path string) ([]publication.Publication, []error) {
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
			title:   row["title"],
			journal: row["journal"],
			date:    row["date"],
		}, l.Source(), i, l.Sentinels))
	}

	return pubs, errs
}
