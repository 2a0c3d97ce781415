package tidy

import (
	"fmt"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

// ColumnPair names the (name, count) columns of one rank block.
type ColumnPair struct {
	Name  string
	Count string
}

// BlockPairs returns the column pairs of blocks side-by-side rank blocks
// as labelled by NormalizeLabels: the first block keeps the plain labels,
// block k gets the ".k" suffix.
func BlockPairs(name, count string, blocks int) []ColumnPair {
	pairs := make([]ColumnPair, 0, blocks)
	for k := 0; k < blocks; k++ {
		p := ColumnPair{Name: name, Count: count}
		if k > 0 {
			p.Name = fmt.Sprintf("%s.%d", name, k)
			p.Count = fmt.Sprintf("%s.%d", count, k)
		}
		pairs = append(pairs, p)
	}
	return pairs
}

// BlockColumns flattens BlockPairs into [Name Count Name.1 Count.1 ...].
func BlockColumns(name, count string, blocks int) []string {
	var cols []string
	for _, p := range BlockPairs(name, count, blocks) {
		cols = append(cols, p.Name, p.Count)
	}
	return cols
}

// Select returns t restricted to columns, in the given order. Every column
// must exist in t.
func Select(t *models.NormalizedTable, columns []string) (*models.NormalizedTable, error) {
	if err := requireColumns(t, columns...); err != nil {
		return nil, err
	}

	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = t.Index(c)
	}

	out := &models.NormalizedTable{
		Columns:   append([]string(nil), columns...),
		Rows:      make([]models.Row, len(t.Rows)),
		SheetRows: copySheetRows(t.SheetRows),
	}
	for r, row := range t.Rows {
		sel := make(models.Row, len(idx))
		for i, j := range idx {
			sel[i] = cell(row, j)
		}
		out.Rows[r] = sel
	}
	return out, nil
}
