package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

// TidySheet is the worksheet WriteXLSX writes the long table to.
const TidySheet = "tidy"

// WriteXLSX saves records to a new workbook at path, header in row 1.
func WriteXLSX(path string, records []models.LongRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TidySheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(TidySheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(LongHeader))
	for i, h := range LongHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{r.Year, r.Rank, r.Name, r.Count, r.Source}); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.SaveAs(path)
}
