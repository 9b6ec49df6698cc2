package model

import "strconv"

// SnapshotRow is the export schema for flagged claims: the input columns
// plus the derived review columns. The parquet tags drive the Parquet
// writer; SnapshotColumns keeps the CSV writer in the same order.
type SnapshotRow struct {
	ClaimID        string `parquet:"claim_id"`
	PayerID        string `parquet:"payer_id"`
	CPTCode        string `parquet:"cpt_code"`
	ICD10Code      string `parquet:"icd10_code"`
	Units          int32  `parquet:"units"`
	ChargeAmount   string `parquet:"charge_amount"`
	ApprovedCombo  bool   `parquet:"approved_combo"`
	DenialCodes    string `parquet:"denial_codes"`
	GlitchScore    int32  `parquet:"glitch_score"`
	PreventionTips string `parquet:"prevention_tips"`
	Notes          string `parquet:"notes"`
}

// SnapshotColumns returns the ordered snapshot header for CSV export.
func SnapshotColumns() []string {
	return []string{
		"claim_id",
		"payer_id",
		"cpt_code",
		"icd10_code",
		"units",
		"charge_amount",
		"approved_combo",
		"denial_codes",
		"Glitch_Score",
		"prevention_tips",
		"notes",
	}
}

// Values returns the row values in SnapshotColumns order for CSV export.
func (r *SnapshotRow) Values() []string {
	return []string{
		r.ClaimID,
		r.PayerID,
		r.CPTCode,
		r.ICD10Code,
		strconv.Itoa(int(r.Units)),
		r.ChargeAmount,
		strconv.FormatBool(r.ApprovedCombo),
		r.DenialCodes,
		strconv.Itoa(int(r.GlitchScore)),
		r.PreventionTips,
		r.Notes,
	}
}
