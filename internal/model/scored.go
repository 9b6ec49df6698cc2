package model

import (
	"sort"
	"strings"
)

// EmptyDenialCodes is the placeholder written to the denial_codes column
// when a claim has no findings.
const EmptyDenialCodes = "—"

// ScoredClaim is a Claim plus everything the batch classifier derived from
// it. It is never mutated after creation; re-score rather than patch.
type ScoredClaim struct {
	Claim

	ApprovedCombo bool
	IsDuplicate   bool
	Findings      []RiskFinding
	Score         int
	Status        Status

	// SourceRowNumber is the 1-based position in the input batch, used as
	// the stable tie-break when sorting by score.
	SourceRowNumber int64
}

// DenialCodes returns the sorted unique finding codes joined with ", ",
// or the placeholder when the claim has no findings.
func (s *ScoredClaim) DenialCodes() string {
	if len(s.Findings) == 0 {
		return EmptyDenialCodes
	}
	seen := make(map[string]bool, len(s.Findings))
	codes := make([]string, 0, len(s.Findings))
	for _, f := range s.Findings {
		if !seen[f.Code] {
			seen[f.Code] = true
			codes = append(codes, f.Code)
		}
	}
	sort.Strings(codes)
	return strings.Join(codes, ", ")
}

// PreventionTips returns the finding tips de-duplicated in first-occurrence
// order. Tips are de-duplicated for display only; scoring subtracts every
// finding's weight individually.
func (s *ScoredClaim) PreventionTips() []string {
	seen := make(map[string]bool, len(s.Findings))
	tips := make([]string, 0, len(s.Findings))
	for _, f := range s.Findings {
		if f.Tip == "" || seen[f.Tip] {
			continue
		}
		seen[f.Tip] = true
		tips = append(tips, f.Tip)
	}
	return tips
}
