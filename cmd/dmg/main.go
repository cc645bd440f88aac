// Package main provides the dmg CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	// Optional .env support for DMG_DATA_DIR / DMG_OUTPUT_DIR overrides.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dmg",
	Short: "Drug mention graph generator",
	Long: `dmg builds a graph linking drugs to the journals and dates in which
their names are mentioned.

It ingests a drug list plus publication records from PubMed (CSV and
relaxed JSON) and clinical trials (CSV), normalizes them into a uniform
shape, finds whole-word mentions of each drug inside publication titles,
and writes the resulting drug -> journal -> mentions graph as a single
JSON document. Ad-hoc queries run against a generated graph without
re-running the pipeline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
