// Package export writes the flagged-claims snapshot for downstream review.
package export

import (
	"fmt"
	"strings"

	"github.com/rxglitch/claimcheck/internal/model"
	"github.com/rxglitch/claimcheck/internal/normalize"
)

// TipSeparator joins de-duplicated prevention tips in the snapshot.
const TipSeparator = "; "

// SnapshotRows converts scored claims into the export schema.
func SnapshotRows(scored []*model.ScoredClaim) []model.SnapshotRow {
	rows := make([]model.SnapshotRow, len(scored))
	for i, sc := range scored {
		rows[i] = model.SnapshotRow{
			ClaimID:        sc.ClaimID,
			PayerID:        sc.PayerID,
			CPTCode:        sc.CPTCode,
			ICD10Code:      sc.PrimaryDiagnosis(),
			Units:          int32(sc.Units),
			ChargeAmount:   normalize.FormatCents(sc.ChargeAmountCents),
			ApprovedCombo:  sc.ApprovedCombo,
			DenialCodes:    sc.DenialCodes(),
			GlitchScore:    int32(sc.Score),
			PreventionTips: strings.Join(sc.PreventionTips(), TipSeparator),
			Notes:          sc.Notes,
		}
	}
	return rows
}

// WriteSnapshot writes the scored claims to path in the requested format.
// An empty format means CSV.
func WriteSnapshot(path, format string, scored []*model.ScoredClaim) error {
	rows := SnapshotRows(scored)
	switch format {
	case "", "csv":
		return writeCSV(path, rows)
	case "parquet":
		return writeParquet(path, rows)
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
}
