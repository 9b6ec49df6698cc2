package batch

import (
	"sort"

	"github.com/rxglitch/claimcheck/internal/model"
)

// Batch scoring constants.
const (
	batchBaseline = 100
	approvalBonus = 5

	// Scores below this are DENY even without findings.
	denyScoreFloor = 70
)

// score computes the Glitch score: 100 minus every finding's weight, plus
// the approval bonus, clamped to [0,100]. Each finding subtracts its own
// weight even when codes repeat.
func score(sc *model.ScoredClaim) int {
	s := batchBaseline
	for _, f := range sc.Findings {
		s -= f.Contribution
	}
	if sc.ApprovedCombo {
		s += approvalBonus
	}
	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return s
}

// StatusOf derives the disposition label. Findings override the numeric
// score: a claim with any finding is DENY regardless of how high it scored.
func StatusOf(sc *model.ScoredClaim) model.Status {
	switch {
	case len(sc.Findings) > 0 || sc.Score < denyScoreFloor:
		return model.StatusDeny
	case sc.Score < batchBaseline:
		return model.StatusWarn
	default:
		return model.StatusPass
	}
}

// SortByScore orders claims worst-first. The sort is stable; claims with
// equal scores keep their input order.
func SortByScore(scored []*model.ScoredClaim) {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score < scored[j].Score
	})
}
