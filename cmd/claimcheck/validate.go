package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rxglitch/claimcheck/internal/exitcode"
	"github.com/rxglitch/claimcheck/internal/logging"
	"github.com/rxglitch/claimcheck/internal/refdata"
	"github.com/rxglitch/claimcheck/internal/rules"
)

var (
	validateReq rules.Request
	sampleKey   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Evaluate a single claim against the denial heuristics",
	RunE:  runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringVar(&validateReq.CPT, "cpt", "", "CPT procedure code")
	f.StringVar(&validateReq.Diagnosis, "dx", "", "ICD-10 diagnosis code")
	f.StringVar(&validateReq.Payer, "payer", "", "Payer / insurance plan name")
	f.StringVar(&validateReq.DOB, "dob", "", "Patient date of birth (YYYY-MM-DD)")
	f.StringVar(&validateReq.DOS, "dos", "", "Date of service (YYYY-MM-DD)")
	f.StringVar(&sampleKey, "sample", "", "Use a built-in sample claim: clean, borderline, broken")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Msg("config overrides failed to load")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	if sampleKey != "" {
		sample, ok := rules.SampleByKey(time.Now(), sampleKey)
		if !ok {
			log.Error().Str("sample", sampleKey).Msg("unknown sample key")
			os.Exit(exitcode.UsageError)
		}
		validateReq = rules.Request{
			CPT:       sample.CPT,
			Diagnosis: sample.DX,
			Payer:     sample.Payer,
			DOB:       sample.DOB,
			DOS:       sample.DOS,
		}
	}

	catalog := refdata.Load(cfg.DataDir, log)
	cfg.Apply(catalog)

	eval := rules.NewEvaluator(catalog, nil)
	res := eval.Evaluate(validateReq)

	fmt.Printf("Score: %d/100 (%s)\n", res.Score, res.Tier)
	fmt.Printf("Predicted denial risk: %.2f\n",
		rules.DenialRisk(catalog, validateReq.CPT, []string{validateReq.Diagnosis}))
	fmt.Println("\nLikely outcome:")
	for _, r := range res.Reasons {
		fmt.Printf("  - %s\n", r)
	}
	fmt.Println("\nRecommended fixes:")
	for _, f := range res.Fixes {
		fmt.Printf("  - %s\n", f)
	}
	return nil
}
