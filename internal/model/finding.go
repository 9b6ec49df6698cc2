package model

// DenialCode is one row of the denial-code reference table.
type DenialCode struct {
	Code          string
	Reason        string
	PreventionTip string
	Category      string
}

// RiskFinding is one triggered batch predicate, resolved against the
// denial-code reference table. Contribution is the score penalty the
// finding carries (already resolved through the weight table).
type RiskFinding struct {
	Code         string
	Reason       string
	Tip          string
	Category     string
	Contribution int
}

// Status is the final disposition label for a batch-scored claim.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusDeny Status = "DENY"
)

// Tier is the single-claim cleanliness label derived from the score.
type Tier string

const (
	TierGood       Tier = "good"
	TierBorderline Tier = "borderline"
	TierBad        Tier = "bad"
)
