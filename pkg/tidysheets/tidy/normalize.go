// Package tidy implements the pure table transformations of the pipeline:
// label normalization, blank-row filtering, column selection and
// reshaping of side-by-side rank blocks into a long table.
//
// No function in this package mutates its input.
package tidy

import (
	"fmt"
	"strings"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

// NormalizeLabels makes labels non-empty and unique, preserving order.
//
// Labels are trimmed. A blank label at position i becomes "Unnamed: i".
// The first occurrence of a label is kept; later occurrences get ".1",
// ".2", and so on, skipping any suffix that is already taken. Applying
// NormalizeLabels to its own output returns the same labels.
func NormalizeLabels(labels []string) []string {
	out := make([]string, len(labels))
	used := make(map[string]bool, len(labels))
	next := make(map[string]int)

	for i, label := range labels {
		base := strings.TrimSpace(label)
		if base == "" {
			base = fmt.Sprintf("Unnamed: %d", i)
		}

		name := base
		for used[name] {
			next[base]++
			name = fmt.Sprintf("%s.%d", base, next[base])
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// Normalize returns a NormalizedTable with the labels of raw rewritten by
// NormalizeLabels. Rows are copied.
func Normalize(raw *models.RawTable) *models.NormalizedTable {
	return &models.NormalizedTable{
		Columns:   NormalizeLabels(raw.Columns),
		Rows:      copyRows(raw.Rows),
		SheetRows: copySheetRows(raw.SheetRows),
	}
}

func copySheetRows(rows []int) []int {
	if rows == nil {
		return nil
	}
	return append([]int(nil), rows...)
}

func copyRows(rows []models.Row) []models.Row {
	out := make([]models.Row, len(rows))
	for i, row := range rows {
		out[i] = append(models.Row(nil), row...)
	}
	return out
}
