package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSkipRows is the number of rows above the header row.
const DefaultSkipRows = 6

// OpenWorkbook opens path, mapping a missing file to models.ErrNotFound and
// an unreadable one to models.ErrFormat.
func OpenWorkbook(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("file %s: %w", path, models.ErrNotFound)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open workbook: %v", models.ErrFormat, err)
	}
	return f, nil
}

// ReadTable reads sheetName starting at row skipRows+1 (1-based), which
// holds the header. Every following row becomes a data row padded to the
// table width; trailing blank rows are dropped.
func ReadTable(f *excelize.File, sheetName string, skipRows int) (*models.RawTable, error) {
	if skipRows < 0 {
		return nil, fmt.Errorf("%w: negative row offset %d", models.ErrFormat, skipRows)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", models.ErrFormat, sheetName, err)
	}
	if len(rows) <= skipRows {
		return nil, fmt.Errorf("%w: sheet %q has %d rows, header expected at row %d",
			models.ErrFormat, sheetName, len(rows), skipRows+1)
	}

	region := rows[skipRows:]
	for len(region) > 1 && isBlankRow(region[len(region)-1]) {
		region = region[:len(region)-1]
	}
	if isBlankRow(region[0]) {
		return nil, fmt.Errorf("%w: sheet %q has a blank header row %d",
			models.ErrFormat, sheetName, skipRows+1)
	}

	width := tableWidth(region)
	table := &models.RawTable{
		Sheet:     sheetName,
		Columns:   make([]string, width),
		Rows:      make([]models.Row, 0, len(region)-1),
		SheetRows: make([]int, 0, len(region)-1),
	}
	copy(table.Columns, region[0])
	for i, cells := range region[1:] {
		table.Rows = append(table.Rows, toRow(cells, width))
		// header is sheet row skipRows+1
		table.SheetRows = append(table.SheetRows, skipRows+2+i)
	}
	return table, nil
}
