package tidy

import (
	"strings"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

// FilterBlank keeps the rows of t whose column cell is present. Blank
// separator rows and trailing notes both lack a name and are dropped.
func FilterBlank(t *models.NormalizedTable, column string) (*models.NormalizedTable, error) {
	if err := requireColumns(t, column); err != nil {
		return nil, err
	}
	idx := t.Index(column)

	out := &models.NormalizedTable{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([]models.Row, 0, len(t.Rows)),
	}
	for r, row := range t.Rows {
		if isBlank(cell(row, idx)) {
			continue
		}
		out.Rows = append(out.Rows, append(models.Row(nil), row...))
		if t.SheetRows != nil {
			out.SheetRows = append(out.SheetRows, t.SheetRow(r))
		}
	}
	return out, nil
}

func isBlank(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// cell returns row[i], treating cells past the end of a short row as empty.
func cell(row models.Row, i int) interface{} {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}
