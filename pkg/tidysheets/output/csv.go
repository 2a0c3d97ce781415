package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

// LongHeader is the column order of the long table in every format.
var LongHeader = []string{"year", "rank", "name", "count", "source"}

// WriteCSV writes records as CSV with LongHeader.
func WriteCSV(w io.Writer, records []models.LongRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(LongHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Rank),
			r.Name,
			strconv.FormatInt(r.Count, 10),
			r.Source,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
