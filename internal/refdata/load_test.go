package refdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	cat := Load("", zerolog.Nop())

	if !cat.Approved("80050", "Z00.00") {
		t.Error("80050/Z00.00 missing from embedded approved combos")
	}
	if cat.Approved("80050", "H52.13") {
		t.Error("80050/H52.13 should not be approved")
	}

	d, ok := cat.Denial("CO-15")
	if !ok {
		t.Fatal("CO-15 missing from embedded denial codes")
	}
	if d.Reason == "" || d.PreventionTip == "" || d.Category == "" {
		t.Errorf("CO-15 metadata incomplete: %+v", d)
	}

	if len(cat.PayerRules) != 2 {
		t.Fatalf("payer rules = %d, want 2", len(cat.PayerRules))
	}
	for _, pr := range cat.PayerRules {
		switch pr.Substring {
		case "horizon":
			if pr.Delta != 5 {
				t.Errorf("horizon delta = %d, want 5", pr.Delta)
			}
		case "united":
			if pr.Delta != -5 {
				t.Errorf("united delta = %d, want -5", pr.Delta)
			}
		default:
			t.Errorf("unexpected payer rule %q", pr.Substring)
		}
	}
}

func TestLoad_DirOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(ApprovedCombosFile, "cpt_code,icd10_code\n12345,a00.0\n  12345 , a00.1\n,missing-cpt\n")
	write(DenialCodesFile, "code,reason,prevention_tip,denial_category\nco-99, spaced reason , spaced tip , Custom \n")
	write(PayerRulesFile, "payer_substring,score_delta,tendency_note\nAcme,7,custom note\nbad,notanumber,skipped\n")

	cat := Load(dir, zerolog.Nop())

	// codes are normalized on load
	if !cat.Approved("12345", "A00.0") || !cat.Approved("12345", "A00.1") {
		t.Error("normalized combos missing")
	}
	if len(cat.ApprovedCombos) != 2 {
		t.Errorf("combos = %d, want 2 (blank CPT row dropped)", len(cat.ApprovedCombos))
	}

	d, ok := cat.Denial("CO-99")
	if !ok {
		t.Fatal("CO-99 not loaded")
	}
	if d.Reason != "spaced reason" || d.PreventionTip != "spaced tip" || d.Category != "Custom" {
		t.Errorf("metadata not trimmed: %+v", d)
	}

	if len(cat.PayerRules) != 1 {
		t.Fatalf("payer rules = %v, want the one numeric rule", cat.PayerRules)
	}
	if pr := cat.PayerRules[0]; pr.Substring != "acme" || pr.Delta != 7 {
		t.Errorf("payer rule = %+v", pr)
	}
}

func TestLoad_MissingTablesDegradeToEmpty(t *testing.T) {
	cat := Load(t.TempDir(), zerolog.Nop())

	if len(cat.ApprovedCombos) != 0 || len(cat.DenialCodes) != 0 || len(cat.PayerRules) != 0 {
		t.Errorf("tables not empty: %d combos, %d codes, %d payer rules",
			len(cat.ApprovedCombos), len(cat.DenialCodes), len(cat.PayerRules))
	}
	// weights are built in, not file-backed
	if cat.Weight("CO-15") != 20 {
		t.Errorf("CO-15 weight = %d, want 20", cat.Weight("CO-15"))
	}
	if cat.Approved("80050", "Z00.00") {
		t.Error("empty combo table must approve nothing")
	}
}

func TestWeight_DefaultForUnknownCode(t *testing.T) {
	cat := Load("", zerolog.Nop())
	if w := cat.Weight("CO-0000"); w != DefaultWeight {
		t.Errorf("unknown code weight = %d, want %d", w, DefaultWeight)
	}
}

func TestCheckTriggerMetadata(t *testing.T) {
	var buf strings.Builder
	log := zerolog.New(&buf)
	cat := Load("", log)

	buf.Reset()
	cat.CheckTriggerMetadata(log, []string{"CO-15", "CO-MISSING"})
	out := buf.String()
	if strings.Contains(out, "CO-15") {
		t.Error("warned about a code that has metadata")
	}
	if !strings.Contains(out, "CO-MISSING") {
		t.Error("missing warning for CO-MISSING")
	}
}
