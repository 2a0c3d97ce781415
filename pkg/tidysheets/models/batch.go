package models

// FileFailure records a file that could not be cleaned.
type FileFailure struct {
	// Path is the offending file.
	Path string `json:"path"`
	// Err is the failure, wrapping the taxonomy sentinels.
	Err error `json:"-"`
	// Message is Err rendered for serialized output.
	Message string `json:"error"`
}

// BatchResult collects the outcome of processing a directory.
type BatchResult struct {
	// Tables holds cleaned tables in discovery order.
	Tables []CleanTable `json:"tables"`
	// Failures holds per-file failures in discovery order.
	Failures []FileFailure `json:"failures,omitempty"`
}

// OK reports whether every file was cleaned.
func (b *BatchResult) OK() bool {
	return len(b.Failures) == 0
}
