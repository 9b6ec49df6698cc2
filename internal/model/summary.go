package model

import "time"

// BatchSummary captures metrics from a single batch scoring run.
type BatchSummary struct {
	FilePath     string
	FileSHA256   string
	RunID        string
	RowsRead     int64
	RowsScored   int64
	RowsFlagged  int64
	CountPass    int64
	CountWarn    int64
	CountDeny    int64
	SnapshotPath string

	DurationRead     time.Duration
	DurationClassify time.Duration
	DurationExport   time.Duration
	DurationTotal    time.Duration
}
