// Package batch implements the multi-claim classifier: approval and
// duplicate annotation, independent denial predicates, weighted scoring,
// and status derivation.
package batch

import (
	"github.com/rxglitch/claimcheck/internal/model"
	"github.com/rxglitch/claimcheck/internal/normalize"
	"github.com/rxglitch/claimcheck/internal/refdata"
)

// Predicate thresholds.
const (
	maxUnitsPerClaim = 2
	maxChargeCents   = 400 * 100
)

// predicate is one independent denial check. Predicates never look at each
// other's results; a claim may accumulate any subset.
type predicate struct {
	code    string
	applies func(sc *model.ScoredClaim) bool
}

var predicates = []predicate{
	{"CO-15", func(sc *model.ScoredClaim) bool { return sc.AuthNumber == "" }},
	{"CO-11", func(sc *model.ScoredClaim) bool { return !sc.ApprovedCombo }},
	{"CO-18", func(sc *model.ScoredClaim) bool { return sc.IsDuplicate }},
	{"CO-222", func(sc *model.ScoredClaim) bool { return sc.Units > maxUnitsPerClaim }},
	{"CO-45", func(sc *model.ScoredClaim) bool { return sc.ChargeAmountCents > maxChargeCents }},
	{"CO-16", func(sc *model.ScoredClaim) bool {
		return sc.RenderingNPI == "" || sc.ReferringProviderID == ""
	}},
}

// TriggerCodes lists every denial code the predicates can produce, for
// startup metadata validation.
var TriggerCodes = func() []string {
	codes := make([]string, len(predicates))
	for i, p := range predicates {
		codes[i] = p.code
	}
	return codes
}()

// Classify derives a ScoredClaim for every input claim. Annotation needs
// the full batch (duplicate detection); everything after that is per-claim.
func Classify(claims []*model.Claim, catalog *refdata.Catalog) []*model.ScoredClaim {
	scored := make([]*model.ScoredClaim, len(claims))

	// Duplicate key counts across the whole batch. Every member of a
	// group sharing a key is flagged, not just the later ones.
	counts := make(map[[32]byte]int, len(claims))
	keys := make([][32]byte, len(claims))
	for i, c := range claims {
		keys[i] = normalize.DuplicateKey(
			c.PatientID,
			c.CPTCode,
			c.PrimaryDiagnosis(),
			normalize.FormatDate(c.DateOfService),
		)
		counts[keys[i]]++
	}

	for i, c := range claims {
		sc := &model.ScoredClaim{
			Claim:           *c,
			ApprovedCombo:   catalog.Approved(c.CPTCode, c.PrimaryDiagnosis()),
			IsDuplicate:     counts[keys[i]] > 1,
			SourceRowNumber: int64(i + 1),
		}
		sc.Findings = findings(sc, catalog)
		sc.Score = score(sc)
		sc.Status = StatusOf(sc)
		scored[i] = sc
	}
	return scored
}

// findings runs every predicate against the claim and resolves triggered
// codes through the denial-code table. A triggered code with no metadata
// produces no finding; the gap is reported loudly at catalog load instead.
func findings(sc *model.ScoredClaim, catalog *refdata.Catalog) []model.RiskFinding {
	var out []model.RiskFinding
	for _, p := range predicates {
		if !p.applies(sc) {
			continue
		}
		meta, ok := catalog.Denial(p.code)
		if !ok {
			continue
		}
		out = append(out, model.RiskFinding{
			Code:         meta.Code,
			Reason:       meta.Reason,
			Tip:          meta.PreventionTip,
			Category:     meta.Category,
			Contribution: catalog.Weight(p.code),
		})
	}
	return out
}
