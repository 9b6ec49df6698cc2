package normalize

import (
	"strings"

	"github.com/rxglitch/claimcheck/internal/model"
)

// FromRow converts a string-typed claims CSV row into a normalized Claim.
// Individual fields that fail to parse fall back to zero values and are
// reported as FieldWarnings on the claim; a bad field never rejects the row.
func FromRow(row *model.RawClaimRow) *model.Claim {
	c := &model.Claim{
		ClaimID:   strings.TrimSpace(row.ClaimID),
		PatientID: strings.TrimSpace(row.PatientID),
		PayerID:   NormalizeCode(row.PayerID),

		CPTCode:        NormalizeCode(row.CPTCode),
		DiagnosisCodes: NormalizeCodes([]string{row.ICD10Code}),

		AuthNumber:          strings.TrimSpace(row.AuthNumber),
		RenderingNPI:        strings.TrimSpace(row.RenderingNPI),
		ReferringProviderID: strings.TrimSpace(row.ReferringProviderID),

		Notes: strings.TrimSpace(row.Notes),
	}

	units, ok := ParseUnits(row.Units)
	if !ok {
		c.Warnings = append(c.Warnings, model.FieldWarning{
			Field: "units", Value: row.Units, Msg: "not a non-negative number, treated as 0",
		})
	}
	c.Units = units

	cents, ok := ParseMoneyCents(row.ChargeAmount)
	if !ok {
		c.Warnings = append(c.Warnings, model.FieldWarning{
			Field: "charge_amount", Value: row.ChargeAmount, Msg: "not a non-negative amount, treated as 0",
		})
	}
	c.ChargeAmountCents = cents

	c.DateOfService = ParseDate(row.DOS)
	if c.DateOfService == nil && strings.TrimSpace(row.DOS) != "" {
		c.Warnings = append(c.Warnings, model.FieldWarning{
			Field: "dos", Value: row.DOS, Msg: "not a YYYY-MM-DD date, date rules skipped",
		})
	}

	return c
}

