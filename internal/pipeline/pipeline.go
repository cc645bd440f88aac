// Package pipeline orchestrates a full batch run: load every source, filter,
// match, and write the graph document.
package pipeline

import (
	"errors"
	"fmt"
	"os"

	"github.com/ocarlier/drugmentions/internal/config"
	"github.com/ocarlier/drugmentions/internal/graph"
	"github.com/ocarlier/drugmentions/internal/loader"
	"github.com/ocarlier/drugmentions/internal/publication"
)

// ErrNoDrugs is returned when the drug list yields nothing to match against.
var ErrNoDrugs = errors.New("no drugs loaded")

// ErrNoSources is returned when every publication source failed to load.
var ErrNoSources = errors.New("no publication source could be read")

// OutputError marks a failure writing the result document. Callers report
// it distinctly from input-side failures.
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("writing output: %v", e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// Result summarizes a completed run.
type Result struct {
	Drugs          int      `json:"drugs"`
	PubMedCSV      int      `json:"pubmed_csv"`
	PubMedJSON     int      `json:"pubmed_json"`
	ClinicalTrials int      `json:"clinical_trials_csv"`
	Publications   int      `json:"publications"`
	FilteredTitles int      `json:"filtered_empty_titles"`
	MatchedDrugs   int      `json:"matched_drugs"`
	FailedSources  []string `json:"failed_sources,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
	OutputPath     string   `json:"output_path"`
}

// source pairs a publication loader with its configured path.
type source struct {
	loader loader.Loader
	path   string
	count  *int
}

// Run executes the pipeline described by cfg and returns a summary.
//
// A missing or empty drug list is fatal: the graph would necessarily be
// blank. Each publication source fails independently; the run only aborts
// when none of them could be read. Warnings accumulate in the result rather
// than stopping the batch.
func Run(cfg *config.Config) (*Result, error) {
	res := &Result{OutputPath: cfg.OutputPath()}

	drugs, errs := loader.DrugsLoader{}.Load(cfg.DrugsPath())
	res.warn(errs)
	if len(drugs) == 0 {
		if len(errs) > 0 {
			return res, fmt.Errorf("loading drugs from %s: %w", cfg.DrugsPath(), errs[0])
		}
		return res, fmt.Errorf("%w from %s", ErrNoDrugs, cfg.DrugsPath())
	}
	res.Drugs = len(drugs)

	sources := []source{
		{loader.PubMedCSVLoader{Sentinels: cfg.Sentinels}, cfg.PubMedCSVPath(), &res.PubMedCSV},
		{loader.PubMedJSONLoader{Sentinels: cfg.Sentinels}, cfg.PubMedJSONPath(), &res.PubMedJSON},
		{loader.ClinicalTrialsLoader{Sentinels: cfg.Sentinels}, cfg.ClinicalTrialsPath(), &res.ClinicalTrials},
	}

	var all []publication.Publication
	loaded := 0
	for _, s := range sources {
		pubs, errs := s.loader.Load(s.path)
		if pubs == nil && len(errs) > 0 {
			res.FailedSources = append(res.FailedSources, string(s.loader.Source()))
			res.warn(errs)
			continue
		}
		loaded++
		res.warn(errs)
		*s.count = len(pubs)
		all = append(all, pubs...)
	}
	if loaded == 0 {
		return res, ErrNoSources
	}

	// Publications whose titles normalize to nothing cannot be matched.
	// The decision is made on the normalized title, after loading.
	matchable := all[:0]
	for _, p := range all {
		if p.NormalizedTitle == "" {
			res.FilteredTitles++
			continue
		}
		matchable = append(matchable, p)
	}
	res.Publications = len(matchable)

	g := graph.Build(drugs, matchable)
	res.MatchedDrugs = g.Len()

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return res, &OutputError{Err: err}
	}
	if err := g.WriteFile(res.OutputPath); err != nil {
		return res, &OutputError{Err: err}
	}

	return res, nil
}

func (r *Result) warn(errs []error) {
	for _, err := range errs {
		r.Warnings = append(r.Warnings, err.Error())
	}
}
