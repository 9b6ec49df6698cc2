package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/rxglitch/claimcheck/internal/model"
)

func sampleScored() []*model.ScoredClaim {
	return []*model.ScoredClaim{
		{
			Claim: model.Claim{
				ClaimID:           "CLM-2",
				PayerID:           "United",
				CPTCode:           "93000",
				DiagnosisCodes:    []string{"H52.13"},
				Units:             3,
				ChargeAmountCents: 45075,
				Notes:             "review",
			},
			Findings: []model.RiskFinding{
				{Code: "CO-222", Tip: "Review unit limits"},
				{Code: "CO-11", Tip: "Verify the pairing"},
				{Code: "CO-45", Tip: "Review unit limits"}, // duplicate tip
			},
			Score:  40,
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
			Score:         95,
			Status:        model.StatusWarn,
		},
	}
}

func TestSnapshotRows(t *testing.T) {
	rows := SnapshotRows(sampleScored())
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	r := rows[0]
	if r.ClaimID != "CLM-2" || r.ICD10Code != "H52.13" || r.Units != 3 {
		t.Errorf("row 0 = %+v", r)
	}
	if r.ChargeAmount != "450.75" {
		t.Errorf("charge = %q, want 450.75", r.ChargeAmount)
	}
	// sorted unique codes
	if r.DenialCodes != "CO-11, CO-222, CO-45" {
		t.Errorf("denial codes = %q", r.DenialCodes)
	}
	// tips de-duplicated in first-occurrence order
	if r.PreventionTips != "Review unit limits; Verify the pairing" {
		t.Errorf("tips = %q", r.PreventionTips)
	}

	if rows[1].DenialCodes != model.EmptyDenialCodes {
		t.Errorf("clean claim denial codes = %q, want placeholder", rows[1].DenialCodes)
	}
	if rows[1].PreventionTips != "" {
		t.Errorf("clean claim tips = %q, want empty", rows[1].PreventionTips)
	}
}

func TestWriteSnapshot_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flagged.csv")
	if err := WriteSnapshot(path, "csv", sampleScored()); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(recs))
	}
	wantHeader := model.SnapshotColumns()
	for i, col := range wantHeader {
		if recs[0][i] != col {
			t.Fatalf("header = %v, want %v", recs[0], wantHeader)
		}
	}
	if recs[1][0] != "CLM-2" || recs[1][8] != "40" || recs[1][7] != "CO-11, CO-222, CO-45" {
		t.Errorf("row 1 = %v", recs[1])
	}
	if recs[2][8] != "95" || recs[2][6] != "true" {
		t.Errorf("row 2 = %v", recs[2])
	}
}

func TestWriteSnapshot_Parquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flagged.parquet")
	if err := WriteSnapshot(path, "parquet", sampleScored()); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}

	pf, err := parquet.OpenFile(f, st.Size())
	if err != nil {
		t.Fatal(err)
	}
	r := parquet.NewGenericReader[model.SnapshotRow](pf)
	defer r.Close()

	got := make([]model.SnapshotRow, 2)
	n, err := r.Read(got)
	if n != 2 {
		t.Fatalf("read %d rows (err %v), want 2", n, err)
	}
	if got[0].ClaimID != "CLM-2" || got[0].GlitchScore != 40 {
		t.Errorf("row 0 = %+v", got[0])
	}
	if got[1].ClaimID != "CLM-1" || !got[1].ApprovedCombo {
		t.Errorf("row 1 = %+v", got[1])
	}
}

func TestWriteSnapshot_EmptyFormatMeansCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flagged.csv")
	if err := WriteSnapshot(path, "", sampleScored()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestWriteSnapshot_UnknownFormat(t *testing.T) {
	err := WriteSnapshot(filepath.Join(t.TempDir(), "x"), "xlsx", nil)
	if err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestWriteSnapshot_EmptyParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")
	if err := WriteSnapshot(path, "parquet", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
