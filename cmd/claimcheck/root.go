package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rxglitch/claimcheck/internal/config"
)

var (
	cfg        config.Config
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "claimcheck",
	Short: "Claim denial-risk scoring for medical billing demos",
	Long:  "Scores billing claims against deterministic denial heuristics: single claims interactively, batches from CSV.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DataDir, "data-dir", os.Getenv("CLAIMCHECK_DATA_DIR"), "Reference table directory (default: built-in tables)")
	pf.StringVar(&configPath, "config", "", "YAML overrides file for weights and payer rules")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
