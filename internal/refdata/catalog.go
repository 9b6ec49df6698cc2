package refdata

import (
	"github.com/rs/zerolog"

	"github.com/rxglitch/claimcheck/internal/model"
)

// DefaultWeight is the score penalty applied for a denial code that has no
// entry in the weight table.
const DefaultWeight = 10

// ComboKey identifies one approved (procedure, diagnosis) pairing.
type ComboKey struct {
	CPT   string
	ICD10 string
}

// PayerRule is one payer tendency: when the normalized payer name contains
// Substring, Delta is applied to the cleanliness score with Note as the reason.
type PayerRule struct {
	Substring string
	Delta     int
	Note      string
}

// Catalog bundles the read-only reference tables. It is loaded once at
// process start; evaluations treat it as immutable.
type Catalog struct {
	ApprovedCombos map[ComboKey]struct{}
	DenialCodes    map[string]model.DenialCode
	PayerRules     []PayerRule
	Weights        map[string]int
}

// Approved reports whether the (cpt, icd10) pair is in the whitelist.
// An empty or missing combo table means nothing is approved.
func (c *Catalog) Approved(cpt, icd10 string) bool {
	_, ok := c.ApprovedCombos[ComboKey{CPT: cpt, ICD10: icd10}]
	return ok
}

// Denial looks up denial-code metadata by code.
func (c *Catalog) Denial(code string) (model.DenialCode, bool) {
	d, ok := c.DenialCodes[code]
	return d, ok
}

// Weight returns the configured score penalty for a denial code, falling
// back to DefaultWeight for unknown codes.
func (c *Catalog) Weight(code string) int {
	if w, ok := c.Weights[code]; ok {
		return w
	}
	return DefaultWeight
}

// CheckTriggerMetadata logs one warning per trigger code that has no entry
// in the denial-code table. Findings for such codes are dropped at
// evaluation time, so surfacing the gap loudly at startup is the only
// signal an operator gets.
func (c *Catalog) CheckTriggerMetadata(log zerolog.Logger, codes []string) {
	for _, code := range codes {
		if _, ok := c.DenialCodes[code]; !ok {
			log.Warn().
				Str("code", code).
				Msg("trigger denial code has no metadata; its findings will not be recorded")
		}
	}
}
