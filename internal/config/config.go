// Package config handles pipeline configuration and the placeholder policy.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Placeholder values substituted for missing data so every publication keeps
// a non-empty journal and date. They are wired into the loaders explicitly
// through Sentinels rather than read as hidden globals.
const (
	UnknownJournal = "unknown_journal"
	UnknownDate    = "UNKNOWN_DATE"
)

// Default file names inside the data and output directories.
const (
	DrugsFile          = "drugs.csv"
	PubMedCSVFile      = "pubmed.csv"
	PubMedJSONFile     = "pubmed.json"
	ClinicalTrialsFile = "clinical_trials.csv"
	OutputFile         = "drug_mentions_graph.json"
)

// Environment variables that override directory settings.
const (
	EnvDataDir   = "DMG_DATA_DIR"
	EnvOutputDir = "DMG_OUTPUT_DIR"
)

// Sentinels are the placeholder values the loaders substitute for missing
// journal and date fields.
type Sentinels struct {
	Journal string `yaml:"journal"`
	Date    string `yaml:"date"`
}

// Config holds the settings for one pipeline run.
type Config struct {
	DataDir   string    `yaml:"data_dir"`
	OutputDir string    `yaml:"output_dir"`
	Sentinels Sentinels `yaml:"sentinels"`
}

// DefaultSentinels returns the standard placeholder values.
func DefaultSentinels() Sentinels {
	return Sentinels{Journal: UnknownJournal, Date: UnknownDate}
}

// Default returns a configuration pointing at ./data and ./output with the
// standard sentinels.
func Default() *Config {
	return &Config{
		DataDir:   "data",
		OutputDir: "output",
		Sentinels: DefaultSentinels(),
	}
}

// Load reads a YAML configuration file. Fields left empty in the file fall
// back to their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.fillDefaults()

	return cfg, nil
}

// ApplyEnv overrides directory settings from the environment.
func (c *Config) ApplyEnv() {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.DataDir = dir
	}
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		c.OutputDir = dir
	}
}

// fillDefaults restores any setting an explicit config file left empty.
func (c *Config) fillDefaults() {
	def := Default()
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.Sentinels.Journal == "" {
		c.Sentinels.Journal = def.Sentinels.Journal
	}
	if c.Sentinels.Date == "" {
		c.Sentinels.Date = def.Sentinels.Date
	}
}

// DrugsPath returns the path to the drug list.
func (c *Config) DrugsPath() string {
	return filepath.Join(c.DataDir, DrugsFile)
}

// PubMedCSVPath returns the path to the PubMed CSV source.
func (c *Config) PubMedCSVPath() string {
	return filepath.Join(c.DataDir, PubMedCSVFile)
}

// PubMedJSONPath returns the path to the PubMed JSON source.
func (c *Config) PubMedJSONPath() string {
	return filepath.Join(c.DataDir, PubMedJSONFile)
}

// ClinicalTrialsPath returns the path to the clinical trials CSV source.
func (c *Config) ClinicalTrialsPath() string {
	return filepath.Join(c.DataDir, ClinicalTrialsFile)
}

// OutputPath returns the path of the generated graph document.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, OutputFile)
}
