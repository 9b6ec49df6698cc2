package model

// RawClaimRow mirrors one row of a claims CSV, everything string-typed as
// read. Parsing into a Claim happens in normalize.FromRow so that per-field
// failures can be reported instead of silently swallowed.
type RawClaimRow struct {
	ClaimID             string
	PatientID           string
	PayerID             string
	CPTCode             string
	ICD10Code           string
	Units               string
	ChargeAmount        string
	AuthNumber          string
	RenderingNPI        string
	ReferringProviderID string
	DOS                 string
	Notes               string
}

// ClaimColumns lists the claims CSV columns in canonical order.
// claim_id, cpt_code and icd10_code are required; the rest are optional.
var ClaimColumns = []string{
	"claim_id",
	"patient_id",
	"payer_id",
	"cpt_code",
	"icd10_code",
	"units",
	"charge_amount",
	"auth_number",
	"rendering_npi",
	"referring_provider_id",
	"dos",
	"notes",
}

// RequiredClaimColumns are the columns a claims file must carry to be scored.
var RequiredClaimColumns = []string{"claim_id", "cpt_code", "icd10_code"}

// FieldByColumn returns a pointer to the struct field backing the given
// column name, or nil for an unknown column.
func (r *RawClaimRow) FieldByColumn(col string) *string {
	switch col {
	case "claim_id":
		return &r.ClaimID
	case "patient_id":
		return &r.PatientID
	case "payer_id":
		return &r.PayerID
	case "cpt_code":
		return &r.CPTCode
	case "icd10_code":
		return &r.ICD10Code
	case "units":
		return &r.Units
	case "charge_amount":
		return &r.ChargeAmount
	case "auth_number":
		return &r.AuthNumber
	case "rendering_npi":
		return &r.RenderingNPI
	case "referring_provider_id":
		return &r.ReferringProviderID
	case "dos":
		return &r.DOS
	case "notes":
		return &r.Notes
	}
	return nil
}
