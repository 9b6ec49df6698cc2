package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rxglitch/claimcheck/internal/batch"
	"github.com/rxglitch/claimcheck/internal/exitcode"
	"github.com/rxglitch/claimcheck/internal/logging"
	"github.com/rxglitch/claimcheck/internal/report"
)

var noColor bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a claims CSV and export flagged claims",
	RunE:  runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to claims CSV (required)")
	f.StringVar(&cfg.OutPath, "out", "flagged_claims_output.csv", "Snapshot path for flagged claims (empty to skip)")
	f.StringVar(&cfg.OutFormat, "format", "csv", "Snapshot format: csv or parquet")
	f.BoolVar(&noColor, "no-color", false, "Disable colored output")
	_ = scoreCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Msg("config overrides failed to load")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.ValidateWithFile(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	scored, summary, err := batch.Run(log, &cfg)
	if err != nil {
		if pe, ok := err.(*batch.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("scoring failed")
			switch pe.Phase {
			case "read":
				os.Exit(exitcode.ReadError)
			case "export":
				os.Exit(exitcode.ExportError)
			default:
				os.Exit(exitcode.ClassifyError)
			}
		}
		log.Error().Err(err).Msg("scoring failed")
		os.Exit(exitcode.ClassifyError)
	}

	report.WriteResults(os.Stdout, scored, !noColor)
	fmt.Printf("\nScored %d claims: %d PASS, %d WARN, %d DENY (%.1fs)\n",
		summary.RowsScored, summary.CountPass, summary.CountWarn, summary.CountDeny,
		summary.DurationTotal.Seconds())
	if summary.SnapshotPath != "" {
		fmt.Printf("Saved %d flagged claims to %s\n", summary.RowsFlagged, summary.SnapshotPath)
	}
	return nil
}
