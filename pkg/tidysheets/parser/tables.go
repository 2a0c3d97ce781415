package parser

// tableWidth returns the number of columns spanned by rows, ignoring
// trailing blank cells.
func tableWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if w := lastNonEmpty(row) + 1; w > width {
			width = w
		}
	}
	return width
}

// lastNonEmpty returns the index of the last non-blank cell, or -1.
func lastNonEmpty(row []string) int {
	for i := len(row) - 1; i >= 0; i-- {
		if ParseValue(row[i]) != nil {
			return i
		}
	}
	return -1
}

// isBlankRow reports whether every cell of row is blank.
func isBlankRow(row []string) bool {
	return lastNonEmpty(row) < 0
}
