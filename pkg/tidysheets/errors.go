package tidysheets

import (
	"fmt"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/parser"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/tidy"
)

var (
	// ErrNotFound indicates a missing directory or file.
	ErrNotFound = models.ErrNotFound
	// ErrAmbiguousSheet indicates zero or several sheets matched the pattern.
	ErrAmbiguousSheet = models.ErrAmbiguousSheet
	// ErrFormat indicates a file that cannot be parsed at the assumed sheet and offset.
	ErrFormat = models.ErrFormat
	// ErrSchema indicates expected columns are absent after normalization.
	ErrSchema = models.ErrSchema
)

// AmbiguousSheetError lists the sheets that matched (possibly none).
type AmbiguousSheetError = parser.AmbiguousSheetError

// SchemaError lists the missing and available columns.
type SchemaError = tidy.SchemaError

// Stage names the pipeline step a FileError came from.
type Stage string

const (
	StageOptions Stage = "options"
	StageOpen    Stage = "open"
	StageLocate  Stage = "locate"
	StageRead    Stage = "read"
	StageFilter  Stage = "filter"
	StageSelect  Stage = "select"
	StageReshape Stage = "reshape"
)

// FileError represents a failure while processing one file.
type FileError struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(path string, stage Stage, err error) *FileError {
	return &FileError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
