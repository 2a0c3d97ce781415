// Package parser reads spreadsheet files into raw tables.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

// numberPattern matches plain decimal notation as stored in a sheet's raw
// cell values. Words such as "Nan" or "Inf" and zero-padded text such as
// "007" do not match and stay strings.
var numberPattern = regexp.MustCompile(`^[+-]?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)

// ParseValue types a raw cell string.
// Returns nil for blank cells, int64 for integers, float64 for finite
// decimals, or the trimmed string.
func ParseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !numberPattern.MatchString(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
		return f
	}
	return s
}

// toRow types the cells of a raw row and pads it to width.
func toRow(cells []string, width int) models.Row {
	row := make(models.Row, width)
	for i := 0; i < width && i < len(cells); i++ {
		row[i] = ParseValue(cells[i])
	}
	return row
}
