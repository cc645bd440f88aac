package main

import (
	"github.com/spf13/cobra"

	"github.com/ocarlier/drugmentions/internal/config"
	"github.com/ocarlier/drugmentions/internal/graph"
	"github.com/ocarlier/drugmentions/internal/query"
)

var queryGraphPath string

func init() {
	queryCmd.PersistentFlags().StringVar(&queryGraphPath, "graph", "", "Path to a generated graph document (default: output/drug_mentions_graph.json)")
	queryCmd.AddCommand(topJournalCmd)
	queryCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run ad-hoc queries against a generated graph",
	Long: `Run ad-hoc queries against a generated graph.

The graph document is loaded into an in-memory SQLite database, so queries
work on any previously generated output without re-running the pipeline.

Usage:
  dmg query top-journal
  dmg query related atropine
  dmg query related atropine --graph ./output/drug_mentions_graph.json`,
}

// TopJournalResponse is the response for query top-journal.
type TopJournalResponse struct {
	Journal string `json:"journal"`
	Drugs   int    `json:"drugs"`
}

var topJournalCmd = &cobra.Command{
	Use:   "top-journal",
	Short: "Name the journal mentioning the most distinct drugs",
	Args:  cobra.NoArgs,
	RunE:  runTopJournal,
}

func runTopJournal(cmd *cobra.Command, args []string) error {
	store := openStore()
	defer store.Close()

	journal, count, err := store.TopJournal()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if journal == "" {
		exitWithError(ExitDataError, "graph has no mentions")
	}

	if humanOutput {
		outputHuman("%s (%d drugs)\n", journal, count)
		return nil
	}
	return outputJSON(TopJournalResponse{Journal: journal, Drugs: count})
}

// RelatedResponse is the response for query related.
type RelatedResponse struct {
	Drug    string   `json:"drug"`
	Related []string `json:"related"`
}

var relatedCmd = &cobra.Command{
	Use:   "related <drug>",
	Short: "List drugs sharing PubMed journals with a target drug",
	Long: `List drugs sharing PubMed journals with a target drug.

A drug is related when both it and the target are mentioned through
PubMed-sourced publications in the same journal. Clinical-trial-only
links do not count.`,
	Args: cobra.ExactArgs(1),
	RunE: runRelated,
}

func runRelated(cmd *cobra.Command, args []string) error {
	store := openStore()
	defer store.Close()

	related, err := store.RelatedDrugs(args[0])
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		if len(related) == 0 {
			outputHuman("No related drugs found for %s\n", args[0])
			return nil
		}
		for _, drug := range related {
			outputHuman("%s\n", drug)
		}
		return nil
	}
	return outputJSON(RelatedResponse{Drug: args[0], Related: related})
}

// openStore loads the graph document into an in-memory query store, exiting
// on any failure.
func openStore() *query.Store {
	path := queryGraphPath
	if path == "" {
		path = config.Default().OutputPath()
	}

	g, err := graph.ReadFile(path)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	store, err := query.Open(g)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return store
}
