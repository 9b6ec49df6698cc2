package exitcode

const (
	Success         = 0
	UsageError      = 1
	ValidationError = 2
	ReadError       = 3
	ClassifyError   = 4
	ExportError     = 5
	ServeError      = 6
)
