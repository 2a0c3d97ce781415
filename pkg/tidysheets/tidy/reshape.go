package tidy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

// Reshape stacks the (name, count) blocks of t into one long table: all
// rows of the first pair, then all rows of the second, and so on. Row order
// within a block is kept, so rank is position + 1. Rows where a block's
// name is blank are skipped, which allows a shorter trailing block. Count
// errors name the sheet row of the offending cell.
func Reshape(t *models.NormalizedTable, pairs []ColumnPair) (*models.CleanTable, error) {
	var want []string
	for _, p := range pairs {
		want = append(want, p.Name, p.Count)
	}
	if err := requireColumns(t, want...); err != nil {
		return nil, err
	}

	out := &models.CleanTable{}
	for _, p := range pairs {
		ni, ci := t.Index(p.Name), t.Index(p.Count)
		for r, row := range t.Rows {
			if isBlank(cell(row, ni)) {
				continue
			}
			count, err := ParseCount(cell(row, ci))
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", p.Count, t.SheetRow(r), err)
			}
			out.Records = append(out.Records, models.CleanRecord{
				Name:  nameOf(cell(row, ni)),
				Count: count,
			})
		}
	}
	return out, nil
}

// nameOf renders a name cell as text. Numeric cells are written in plain
// decimal notation.
func nameOf(v interface{}) string {
	switch n := v.(type) {
	case string:
		return strings.TrimSpace(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// ParseCount converts a count cell to an integer. Floats must be whole and
// strings may carry thousands separators.
func ParseCount(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("%w: count %v is not a whole number", models.ErrFormat, n)
		}
		return int64(n), nil
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return ParseCount(f)
		}
		return 0, fmt.Errorf("%w: count %q is not a number", models.ErrFormat, n)
	case nil:
		return 0, fmt.Errorf("%w: count is missing", models.ErrFormat)
	default:
		return 0, fmt.Errorf("%w: unsupported count type %T", models.ErrFormat, v)
	}
}
