package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
	"github.com/xuri/excelize/v2"
)

// AmbiguousSheetError reports that a workbook does not have exactly one
// sheet matching the pattern.
type AmbiguousSheetError struct {
	Pattern string
	Matches []string
}

func (e *AmbiguousSheetError) Error() string {
	if len(e.Matches) == 0 {
		return fmt.Sprintf("no sheet name contains %q", e.Pattern)
	}
	return fmt.Sprintf("%d sheet names contain %q: %s",
		len(e.Matches), e.Pattern, strings.Join(e.Matches, ", "))
}

func (e *AmbiguousSheetError) Unwrap() error {
	return models.ErrAmbiguousSheet
}

// MatchSheets returns the names containing pattern, in workbook order.
func MatchSheets(names []string, pattern string) []string {
	var matches []string
	for _, name := range names {
		if strings.Contains(name, pattern) {
			matches = append(matches, name)
		}
	}
	return matches
}

// LocateSheet returns the single sheet of f whose name contains pattern.
// No tie-break is attempted: zero or several matches is an AmbiguousSheetError.
func LocateSheet(f *excelize.File, pattern string) (string, error) {
	matches := MatchSheets(f.GetSheetList(), pattern)
	if len(matches) != 1 {
		return "", &AmbiguousSheetError{Pattern: pattern, Matches: matches}
	}
	return matches[0], nil
}
