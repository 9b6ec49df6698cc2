package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rxglitch/claimcheck/internal/model"
)

func writeCSV(path string, rows []model.SnapshotRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(model.SnapshotColumns()); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot header: %w", err)
	}
	for i := range rows {
		if err := w.Write(rows[i].Values()); err != nil {
			f.Close()
			return fmt.Errorf("write snapshot row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush snapshot: %w", err)
	}
	return f.Close()
}
