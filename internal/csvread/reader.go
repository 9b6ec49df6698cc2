// Package csvread streams claims CSV files as string-typed rows.
package csvread

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rxglitch/claimcheck/internal/model"
)

// Reader wraps an encoding/csv reader for streaming RawClaimRow records.
// The header is read and normalized at Open time.
type Reader struct {
	file    *os.File
	cr      *csv.Reader
	columns []string
}

// Open opens a claims CSV and reads its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open claims file: %w", err)
	}

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read claims header: %w", err)
	}

	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(col))
	}

	return &Reader{file: f, cr: cr, columns: columns}, nil
}

// Columns returns the normalized header.
func (r *Reader) Columns() []string {
	return r.columns
}

// Read returns the next row, mapped by column name. Unknown and stray
// unnamed columns are ignored. Returns io.EOF when done.
func (r *Reader) Read() (*model.RawClaimRow, error) {
	rec, err := r.cr.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("read claims row: %w", err)
	}

	var row model.RawClaimRow
	for i, col := range r.columns {
		if i >= len(rec) {
			break
		}
		if field := row.FieldByColumn(col); field != nil {
			*field = rec[i]
		}
	}
	return &row, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
