package report

import (
	"strings"
	"testing"

	"github.com/rxglitch/claimcheck/internal/model"
)

func scoredFixture() []*model.ScoredClaim {
	return []*model.ScoredClaim{
		{
			Claim: model.Claim{
				ClaimID:           "CLM-2",
				PayerID:           "United",
				CPTCode:           "93000",
				DiagnosisCodes:    []string{"H52.13"},
				Units:             1,
				ChargeAmountCents: 8000,
			},
			Findings: []model.RiskFinding{
				{Code: "CO-11", Tip: "Verify the CPT/ICD-10 pairing"},
			},
			Score:  80,
			Status: model.StatusDeny,
		},
		{
			Claim: model.Claim{
				ClaimID:           "CLM-1",
				PayerID:           "Aetna",
				CPTCode:           "80050",
				DiagnosisCodes:    []string{"Z00.00"},
				Units:             1,
				ChargeAmountCents: 12500,
			},
			ApprovedCombo: true,
			Score:         100,
			Status:        model.StatusPass,
		},
	}
}

func TestWriteResults(t *testing.T) {
	var buf strings.Builder
	WriteResults(&buf, scoredFixture(), false)
	out := buf.String()

	for _, want := range []string{
		"STATUS",
		"CLM-2",
		"CO-11",
		"FLAGGED CLAIMS (1 with potential issues):",
		"tip: Verify the CPT/ICD-10 pairing",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, ansiRed) {
		t.Error("color codes emitted with color disabled")
	}
	// the clean claim stays out of the flagged section
	flaggedPart := out[strings.Index(out, "FLAGGED"):]
	if strings.Contains(flaggedPart, "CLM-1") {
		t.Error("passing claim listed as flagged")
	}
}

func TestWriteResults_Color(t *testing.T) {
	var buf strings.Builder
	WriteResults(&buf, scoredFixture(), true)
	out := buf.String()
	if !strings.Contains(out, ansiRed) || !strings.Contains(out, ansiGreen) {
		t.Error("expected colored status lines")
	}
}

func TestWriteResults_AllClean(t *testing.T) {
	var buf strings.Builder
	WriteResults(&buf, []*model.ScoredClaim{
		{
			Claim:         model.Claim{ClaimID: "CLM-1"},
			ApprovedCombo: true,
			Score:         100,
			Status:        model.StatusPass,
		},
	}, false)
	if !strings.Contains(buf.String(), "All claims passed glitch checks.") {
		t.Errorf("missing all-clean message:\n%s", buf.String())
	}
}
