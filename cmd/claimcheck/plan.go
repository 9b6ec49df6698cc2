package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rxglitch/claimcheck/internal/csvread"
	"github.com/rxglitch/claimcheck/internal/exitcode"
	"github.com/rxglitch/claimcheck/internal/logging"
	"github.com/rxglitch/claimcheck/internal/normalize"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats for a claims file (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to claims CSV (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateWithFile(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := csvread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open claims file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	headerErr := csvread.ValidateHeader(reader.Columns())

	payerCounts := make(map[string]int64)
	cptCounts := make(map[string]int64)
	var rows, missingAuth, badDates int64

	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			log.Warn().Err(readErr).Int64("row", rows+1).Msg("row unreadable")
			rows++
			continue
		}
		rows++
		c := normalize.FromRow(row)
		payerCounts[c.PayerID]++
		cptCounts[c.CPTCode]++
		if c.AuthNumber == "" {
			missingAuth++
		}
		if c.DateOfService == nil {
			badDates++
		}
	}

	fmt.Println("=== claimcheck plan ===")
	fmt.Printf("File:         %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:      %s\n", sha)
	fmt.Printf("Size:         %d bytes\n", stat.Size())
	fmt.Printf("Rows:         %d\n", rows)
	fmt.Printf("Missing auth: %d\n", missingAuth)
	fmt.Printf("Bad DOS:      %d\n", badDates)
	fmt.Println()
	fmt.Println("Payer distribution:")
	for _, k := range sortedKeys(payerCounts) {
		fmt.Printf("  %-18s %6d\n", k, payerCounts[k])
	}
	fmt.Println("CPT distribution:")
	for _, k := range sortedKeys(cptCounts) {
		fmt.Printf("  %-18s %6d\n", k, cptCounts[k])
	}
	fmt.Println()
	if headerErr != nil {
		fmt.Printf("Header validation: FAILED (%v)\n", headerErr)
		os.Exit(exitcode.ValidationError)
	}
	fmt.Println("Header validation: OK")
	return nil
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
