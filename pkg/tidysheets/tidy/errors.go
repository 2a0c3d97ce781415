package tidy

import (
	"fmt"
	"strings"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

// SchemaError reports required columns absent from a table.
type SchemaError struct {
	Missing   []string
	Available []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing columns [%s] (have [%s])",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

func (e *SchemaError) Unwrap() error {
	return models.ErrSchema
}

// requireColumns returns a SchemaError naming every label of want absent from t.
func requireColumns(t *models.NormalizedTable, want ...string) error {
	var missing []string
	for _, c := range want {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &SchemaError{
		Missing:   missing,
		Available: append([]string(nil), t.Columns...),
	}
}
