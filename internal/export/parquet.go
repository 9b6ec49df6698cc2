package export

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/rxglitch/claimcheck/internal/model"
)

func writeParquet(path string, rows []model.SnapshotRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	w := parquet.NewGenericWriter[model.SnapshotRow](f)
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			w.Close()
			f.Close()
			return fmt.Errorf("write snapshot rows: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close snapshot writer: %w", err)
	}
	return f.Close()
}
