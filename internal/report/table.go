// Package report renders batch results as an aligned console table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/rxglitch/claimcheck/internal/model"
	"github.com/rxglitch/claimcheck/internal/normalize"
)

// ANSI colors for status lines. Colors are disabled via WriteResults' color flag.
const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiGreen  = "\x1b[32m"
	ansiReset  = "\x1b[0m"
)

func colorFor(status model.Status) string {
	switch status {
	case model.StatusDeny:
		return ansiRed
	case model.StatusWarn:
		return ansiYellow
	default:
		return ansiGreen
	}
}

// WriteResults prints the scored batch, worst first, one colorized line per
// claim, followed by the flagged-claims section.
func WriteResults(w io.Writer, scored []*model.ScoredClaim, color bool) {
	fmt.Fprintln(w, "=== claimcheck results (sorted by score) ===")
	header := fmt.Sprintf("%-7s %-9s %-18s %-6s %-7s %-2s %7s %5s  %s",
		"STATUS", "CLAIM", "PAYER", "CPT", "DX", "U", "CHARGE", "SCORE", "DENIALS / NOTES")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	for _, sc := range scored {
		line := fmt.Sprintf("%-7s %-9s %-18s %-6s %-7s %-2d %7s %5d  %s %s",
			sc.Status,
			sc.ClaimID,
			sc.PayerID,
			sc.CPTCode,
			sc.PrimaryDiagnosis(),
			sc.Units,
			normalize.FormatCents(sc.ChargeAmountCents),
			sc.Score,
			sc.DenialCodes(),
			sc.Notes,
		)
		if color {
			fmt.Fprintln(w, colorFor(sc.Status)+line+ansiReset)
		} else {
			fmt.Fprintln(w, line)
		}
	}

	flagged := 0
	for _, sc := range scored {
		if sc.Score < 100 {
			flagged++
		}
	}
	fmt.Fprintln(w)
	if flagged == 0 {
		fmt.Fprintln(w, "All claims passed glitch checks. No issues detected.")
		return
	}

	fmt.Fprintf(w, "FLAGGED CLAIMS (%d with potential issues):\n", flagged)
	for _, sc := range scored {
		if sc.Score >= 100 {
			continue
		}
		fmt.Fprintf(w, "  %-9s score=%-3d %s\n", sc.ClaimID, sc.Score, sc.DenialCodes())
		for _, tip := range sc.PreventionTips() {
			fmt.Fprintf(w, "            tip: %s\n", tip)
		}
	}
}
