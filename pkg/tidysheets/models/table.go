// Package models defines data structures for the tidy pipeline.
package models

// Row is one sheet row. A cell is nil (empty), int64, float64, or string.
type Row []interface{}

// RawTable is a sheet region as read, before any label cleanup.
type RawTable struct {
	// Sheet is the worksheet the table was read from.
	Sheet string `json:"sheet"`
	// Columns holds header labels in sheet order. Labels may be blank or repeated.
	Columns []string `json:"columns"`
	// Rows holds data rows, each padded to len(Columns).
	Rows []Row `json:"rows"`
	// SheetRows holds the 1-based sheet row number of each data row.
	SheetRows []int `json:"sheet_rows,omitempty"`
}

// NormalizedTable is a table whose column labels are non-empty and unique.
type NormalizedTable struct {
	// Columns holds unique, non-empty labels in sheet order.
	Columns []string `json:"columns"`
	// Rows holds data rows, each len(Columns) long.
	Rows []Row `json:"rows"`
	// SheetRows holds the 1-based sheet row number of each data row, when known.
	SheetRows []int `json:"sheet_rows,omitempty"`
}

// SheetRow returns the sheet row number of data row i, falling back to
// i+1 when t carries no row numbers.
func (t *NormalizedTable) SheetRow(i int) int {
	if i >= 0 && i < len(t.SheetRows) {
		return t.SheetRows[i]
	}
	return i + 1
}

// Index returns the position of label, or -1.
func (t *NormalizedTable) Index(label string) int {
	for i, c := range t.Columns {
		if c == label {
			return i
		}
	}
	return -1
}

// Has reports whether label is a column of t.
func (t *NormalizedTable) Has(label string) bool {
	return t.Index(label) >= 0
}
