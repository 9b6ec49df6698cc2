package model

import "time"

// Claim is the normalized representation of a single billing claim.
// Code fields are trimmed and upper-cased; money is held as int64 cents;
// date fields are nil when the source value did not parse.
type Claim struct {
	ClaimID   string
	PatientID string
	PayerID   string

	CPTCode        string
	DiagnosisCodes []string

	Units             int
	ChargeAmountCents int64

	AuthNumber          string
	RenderingNPI        string
	ReferringProviderID string

	DateOfBirth   *time.Time
	DateOfService *time.Time

	Notes string

	// Warnings collects per-field parse problems found while building the
	// claim. A warning never invalidates the claim as a whole.
	Warnings []FieldWarning
}

// PrimaryDiagnosis returns the first diagnosis code, or "" when none is set.
func (c *Claim) PrimaryDiagnosis() string {
	if len(c.DiagnosisCodes) == 0 {
		return ""
	}
	return c.DiagnosisCodes[0]
}

// FieldWarning records a single field that failed to parse and the fallback
// that was applied instead.
type FieldWarning struct {
	Field string
	Value string
	Msg   string
}
