package models

import "errors"

// Failure classes shared by the parser and tidy packages. Every
// structured error in the pipeline matches exactly one of them with errors.Is.
var (
	// ErrNotFound indicates a missing directory or file.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguousSheet indicates zero or several sheets matched the pattern.
	ErrAmbiguousSheet = errors.New("ambiguous sheet")
	// ErrFormat indicates content that cannot be parsed at the assumed layout.
	ErrFormat = errors.New("invalid format")
	// ErrSchema indicates expected columns are absent.
	ErrSchema = errors.New("schema mismatch")
)
