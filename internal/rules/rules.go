package rules

import (
	"strings"
	"time"
)

// Well-known codes the demo rules key on.
const (
	cptPreventivePanel  = "80050"
	cptEstablishedVisit = "99213"
	cptCardiacECG       = "93000"

	prefixPreventiveExam = "Z00"
	prefixEyeDisorder    = "H52"
)

// Common self-limited presentations for an established E/M visit:
// headache, cough/cold, muscle spasm.
var establishedVisitDx = map[string]bool{
	"R51.9": true,
	"J06.9": true,
	"M54.5": true,
}

// ruleList returns the ordered rule set. Order matters only for the order
// of reason/fix texts; the deltas are independent.
func (e *Evaluator) ruleList() []Rule {
	return []Rule{
		{
			Name: "preventive-panel-match",
			Eval: func(c claimView) *Outcome {
				if c.CPT != cptPreventivePanel || !strings.HasPrefix(c.Diagnosis, prefixPreventiveExam) {
					return nil
				}
				return &Outcome{
					Delta:   deltaPreventiveMatch,
					Reasons: []string{"Preventive service likely covered when paired with Z00.00."},
					Fixes:   []string{"Document preventive context; include annual exam note."},
				}
			},
		},
		{
			Name: "established-visit-documentation",
			Eval: func(c claimView) *Outcome {
				if c.CPT != cptEstablishedVisit || !establishedVisitDx[c.Diagnosis] {
					return nil
				}
				// Delta is symbolic: the rule exists to attach the
				// documentation text while keeping the score at baseline.
				return &Outcome{
					Delta:   deltaEstablishedVisit,
					Reasons: []string{"E/M visit often hinges on documentation of medical necessity."},
					Fixes:   []string{"Include symptom duration/severity and prior self-care; ensure level-of-service criteria."},
				}
			},
		},
		{
			Name: "cardiac-test-eye-diagnosis",
			Eval: func(c claimView) *Outcome {
				if c.CPT != cptCardiacECG || !strings.HasPrefix(c.Diagnosis, prefixEyeDisorder) {
					return nil
				}
				return &Outcome{
					Delta:   deltaCardiacEyeMismatch,
					Reasons: []string{"Diagnosis unrelated to cardiac test; likely medical necessity denial."},
					Fixes:   []string{"Use a cardiac-related ICD-10 (e.g., R07.9, I20.9) if appropriate and documented."},
				}
			},
		},
		{
			Name: "payer-tendencies",
			Eval: func(c claimView) *Outcome {
				if c.Payer == "" {
					return nil
				}
				var out Outcome
				for _, pr := range e.catalog.PayerRules {
					if strings.Contains(c.Payer, pr.Substring) {
						out.Delta += pr.Delta
						out.Reasons = append(out.Reasons, pr.Note)
					}
				}
				if len(out.Reasons) == 0 {
					return nil
				}
				return &out
			},
		},
		{
			Name: "future-date-of-service",
			Eval: func(c claimView) *Outcome {
				// Skipped entirely when the DOS did not parse.
				if c.DOS == nil {
					return nil
				}
				dosDay := time.Date(c.DOS.Year(), c.DOS.Month(), c.DOS.Day(), 0, 0, 0, 0, time.UTC)
				today := time.Date(c.Today.Year(), c.Today.Month(), c.Today.Day(), 0, 0, 0, 0, time.UTC)
				if int(dosDay.Sub(today).Hours()/24) <= futureDOSGraceDays {
					return nil
				}
				return &Outcome{
					Delta:   deltaFutureDOS,
					Reasons: []string{"Date of service is in the future."},
					Fixes:   []string{"Correct DOS or defer claim until service is performed."},
				}
			},
		},
	}
}
