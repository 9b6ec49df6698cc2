package rules

import (
	"github.com/rxglitch/claimcheck/internal/normalize"
	"github.com/rxglitch/claimcheck/internal/refdata"
)

// DenialRisk is the deterministic placeholder behind the "predicted risk"
// readout: 0 is clean, 1 is certain denial. No model is involved; an
// approved procedure/diagnosis combo maps to a clean score of 100,
// anything else to 70, and risk is 1 - score/100.
func DenialRisk(catalog *refdata.Catalog, cpt string, diagnoses []string) float64 {
	cpt = normalize.NormalizeCode(cpt)

	approved := false
	if cpt != "" {
		for _, dx := range normalize.NormalizeCodes(diagnoses) {
			if catalog.Approved(cpt, dx) {
				approved = true
				break
			}
		}
	}

	score := 70.0
	if approved {
		score = 100.0
	}

	risk := 1 - score/100
	if risk < 0 {
		risk = 0
	}
	if risk > 1 {
		risk = 1
	}
	return risk
}
