package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/ocarlier/drugmentions/internal/config"
	"github.com/ocarlier/drugmentions/internal/publication"
)

// PubMedJSONLoader loads the PubMed JSON source. The export is not strict
// JSON: it carries trailing commas, so the bytes are standardized with
// hujson before decoding.
type PubMedJSONLoader struct {
	Sentinels config.Sentinels
}

// pubmedRecord is the raw object shape in the JSON export.
type pubmedRecord struct {
	ID      FlexibleString `json:"id"`
	Title   string         `json:"title"`
	Date    string         `json:"date"`
	Journal string         `json:"journal"`
}

func (PubMedJSONLoader) Source() publication.SourceType {
	return publication.SourcePubMedJSON
}

func (l PubMedJSONLoader) Load(path string) ([]publication.Publication, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("reading %s: %w", path, err)}
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, []error{fmt.Errorf("%s: standardizing %s: %w", l.Source(), path, err)}
	}

	var records []pubmedRecord
	if err := json.Unmarshal(std, &records); err != nil {
		return nil, []error{fmt.Errorf("%s: parsing %s: %w", l.Source(), path, err)}
	}

	pubs := make([]publication.Publication, 0, len(records))
	for i, rec := range records {
		pubs = append(pubs, build(entry{
			id:      rec.ID.String(),
			title:   rec.Title,
			journal: rec.Journal,
			date:    rec.Date,
		}, l.Source(), i, l.Sentinels))
	}

	return pubs, nil
}
