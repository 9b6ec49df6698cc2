// Package rules implements the deterministic single-claim risk evaluator:
// an ordered list of independent rules folded over a baseline cleanliness
// score, clamped to [0,100] and mapped to a tier.
package rules

import (
	"time"

	"github.com/rxglitch/claimcheck/internal/model"
	"github.com/rxglitch/claimcheck/internal/normalize"
	"github.com/rxglitch/claimcheck/internal/refdata"
)

// Scoring constants. The baseline sits deliberately between the borderline
// bounds so a claim no rule recognizes reads as neutral, not clean.
const (
	BaselineScore = 60

	deltaPreventiveMatch    = 30
	deltaEstablishedVisit   = 0
	deltaCardiacEyeMismatch = -40
	deltaFutureDOS          = -10

	// DOS more than this many days ahead of today counts as future.
	futureDOSGraceDays = 2
)

// Tier thresholds, closed-open: score >= TierGoodMin is good,
// >= TierBorderlineMin is borderline, anything below is bad.
const (
	TierGoodMin       = 80
	TierBorderlineMin = 40
)

// Request carries the raw single-claim form fields. It is request-scoped;
// the evaluator holds no state between calls.
type Request struct {
	CPT       string `json:"cpt"`
	Diagnosis string `json:"dx"`
	Payer     string `json:"payer"`
	DOB       string `json:"dob"`
	DOS       string `json:"dos"`
}

// Result is the evaluator's verdict for one claim.
type Result struct {
	Score   int        `json:"score"`
	Tier    model.Tier `json:"denial_risk"`
	Reasons []string   `json:"reasons"`
	Fixes   []string   `json:"recommended_fixes"`
}

// Outcome is the contribution of a single triggered rule.
type Outcome struct {
	Delta   int
	Reasons []string
	Fixes   []string
}

// Rule is one pure predicate over a normalized claim. Eval returns nil
// when the rule does not apply.
type Rule struct {
	Name string
	Eval func(c claimView) *Outcome
}

// claimView is the normalized slice of a claim the rules inspect.
type claimView struct {
	CPT       string
	Diagnosis string
	Payer     string // lower-cased, whitespace-collapsed
	DOS       *time.Time
	Today     time.Time
}

// Evaluator applies the rule list to single claims. Safe for concurrent
// use; the catalog is read-only.
type Evaluator struct {
	catalog *refdata.Catalog
	now     func() time.Time
}

// NewEvaluator builds an evaluator over the given catalog. now is used for
// the future-DOS rule; pass nil for time.Now.
func NewEvaluator(catalog *refdata.Catalog, now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}
	return &Evaluator{catalog: catalog, now: now}
}

// Evaluate scores one claim. Rules run in a fixed order; each triggered
// rule adds its delta and appends its reason and fix texts. The final
// score is clamped to [0,100] and the result never has empty reasons or
// fixes.
func (e *Evaluator) Evaluate(req Request) Result {
	view := claimView{
		CPT:       normalize.NormalizeCode(req.CPT),
		Diagnosis: normalize.NormalizeCode(req.Diagnosis),
		Payer:     normalize.NormalizePayer(req.Payer),
		DOS:       normalize.ParseDate(req.DOS),
		Today:     e.now(),
	}

	score := BaselineScore
	var reasons, fixes []string

	for _, r := range e.ruleList() {
		out := r.Eval(view)
		if out == nil {
			continue
		}
		score += out.Delta
		reasons = append(reasons, out.Reasons...)
		fixes = append(fixes, out.Fixes...)
	}

	score = clamp(score)

	if len(reasons) == 0 {
		reasons = []string{"Coverage depends on plan specifics and documentation quality."}
	}
	if len(fixes) == 0 {
		fixes = []string{"Verify payer policy; ensure notes support medical necessity."}
	}

	return Result{
		Score:   score,
		Tier:    TierOf(score),
		Reasons: reasons,
		Fixes:   fixes,
	}
}

// TierOf maps a cleanliness score to its tier. This is the single source of
// truth for both the textual risk label and the badge color classes.
func TierOf(score int) model.Tier {
	switch {
	case score >= TierGoodMin:
		return model.TierGood
	case score >= TierBorderlineMin:
		return model.TierBorderline
	default:
		return model.TierBad
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
