// Package testutil builds spreadsheet fixtures for tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a generated workbook; Rows start at A1.
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// WriteWorkbook saves a workbook with sheets, in order, to dir/name and
// returns its path.
func WriteWorkbook(t testing.TB, dir, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("new sheet %q: %v", s.Name, err)
		}
		for r, row := range s.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			values := row
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				t.Fatalf("set row %d of %q: %v", r+1, s.Name, err)
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

// Preamble is the six rows above the header of a yearly sheet.
func Preamble() [][]interface{} {
	return [][]interface{}{
		{"Baby names in England and Wales"},
		{},
		{"Table 1: Top 100 names"},
		{},
		{"Ranked by count"},
		{},
	}
}

// ChangeHeader is a header with a change-in-rank column between the blocks.
func ChangeHeader() []interface{} {
	return []interface{}{"Name", "Count", "Change", "Name", "Count"}
}

// PlainHeader is a header of two bare (name, count) blocks.
func PlainHeader() []interface{} {
	return []interface{}{"Name", "Count", "Name", "Count"}
}

// NamesRows builds a yearly "Table 1" sheet: Preamble, header, a blank
// separator, n rows of two side-by-side blocks, a blank row and a note
// that sits outside the name column. First-block names are A01..An with
// counts 5000 downward; second-block names are B01..Bn from 1000 downward.
func NamesRows(header []interface{}, n int, withChange bool) [][]interface{} {
	rows := append(Preamble(), header, []interface{}{})
	for i := 0; i < n; i++ {
		row := []interface{}{fmt.Sprintf("A%02d", i+1), 5000 - i}
		if withChange {
			row = append(row, "+1")
		}
		row = append(row, fmt.Sprintf("B%02d", i+1), 1000-i)
		rows = append(rows, row)
	}
	return append(rows, []interface{}{}, []interface{}{"", "Notes: figures are provisional"})
}
