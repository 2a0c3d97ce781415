// Package tidysheets turns a directory of yearly workbooks, each holding a
// "Table 1" sheet of side-by-side ranked (name, count) blocks, into long
// tables of (name, count) records.
package tidysheets

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/parser"
)

// Options configures the pipeline.
type Options struct {
	// SheetPattern is the substring the data sheet name must contain.
	SheetPattern string
	// SkipRows is the number of rows above the header row.
	SkipRows int
	// NameColumn is the header label of each block's name column.
	NameColumn string
	// CountColumn is the header label of each block's count column.
	CountColumn string
	// Blocks is the number of side-by-side (name, count) blocks.
	Blocks int
	// Extensions restricts discovery to these file extensions.
	// If empty, parser.DefaultExtensions is used.
	Extensions []string
	// Workers bounds how many files ProcessDir handles at once.
	// Values below 2 process files sequentially.
	Workers int
	// Logger receives progress and failure logs. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns the layout of the yearly "Table 1" workbooks.
func DefaultOptions() Options {
	return Options{
		SheetPattern: "Table 1",
		SkipRows:     parser.DefaultSkipRows,
		NameColumn:   "Name",
		CountColumn:  "Count",
		Blocks:       2,
		Workers:      1,
	}
}

// Validate reports the first unusable setting.
func (o Options) Validate() error {
	switch {
	case o.SheetPattern == "":
		return fmt.Errorf("sheet pattern must not be empty")
	case o.SkipRows < 0:
		return fmt.Errorf("skip rows must not be negative, got %d", o.SkipRows)
	case o.NameColumn == "" || o.CountColumn == "":
		return fmt.Errorf("name and count columns must be set")
	case o.NameColumn == o.CountColumn:
		return fmt.Errorf("name and count columns must differ, both are %q", o.NameColumn)
	case o.Blocks < 1:
		return fmt.Errorf("blocks must be at least 1, got %d", o.Blocks)
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
