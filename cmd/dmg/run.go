package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ocarlier/drugmentions/internal/config"
	"github.com/ocarlier/drugmentions/internal/pipeline"
)

var (
	runConfigPath string
	runDataDir    string
	runOutputDir  string
)

func init() {
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to a YAML config file")
	runCmd.Flags().StringVar(&runDataDir, "data-dir", "", "Directory containing the source files (overrides config)")
	runCmd.Flags().StringVar(&runOutputDir, "output-dir", "", "Directory for the graph document (overrides config)")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full mention pipeline",
	Long: `Run the full mention pipeline.

Loads the drug list and the publication sources from the data directory,
builds the drug mention graph, and writes it to
<output-dir>/drug_mentions_graph.json.

Usage:
  dmg run
  dmg run --config dmg.yml
  dmg run --data-dir ./data --output-dir ./output

Settings resolve in order: defaults, config file, DMG_DATA_DIR and
DMG_OUTPUT_DIR environment variables, then flags.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	res, err := pipeline.Run(cfg)
	if err != nil {
		code := ExitDataError
		var outErr *pipeline.OutputError
		if errors.As(err, &outErr) {
			code = ExitOutputError
		}
		exitWithError(code, "%v", err)
	}

	if humanOutput {
		for _, w := range res.Warnings {
			warn("%s", w)
		}
		outputHuman("Loaded %d drugs and %d publications (%d pubmed_csv, %d pubmed_json, %d clinical_trials_csv)\n",
			res.Drugs, res.Publications, res.PubMedCSV, res.PubMedJSON, res.ClinicalTrials)
		if res.FilteredTitles > 0 {
			outputHuman("Filtered %d publications with empty titles\n", res.FilteredTitles)
		}
		for _, s := range res.FailedSources {
			outputHuman("Source failed to load: %s\n", s)
		}
		outputHuman("Matched %d drugs; graph written to %s\n", res.MatchedDrugs, res.OutputPath)
		return nil
	}
	return outputJSON(res)
}

// loadConfig resolves the run configuration from defaults, the optional
// config file, the environment, and flags, in that order.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.Load(runConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if runDataDir != "" {
		cfg.DataDir = runDataDir
	}
	if runOutputDir != "" {
		cfg.OutputDir = runOutputDir
	}
	return cfg, nil
}
