package tidysheets

import (
	"github.com/montanaflynn/stats"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

// Summary describes the count distribution of one CleanTable.
type Summary struct {
	Source  string  `json:"source"`
	Year    int     `json:"year"`
	Names   int     `json:"names"`
	Total   int64   `json:"total"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Max     int64   `json:"max"`
	TopName string  `json:"top_name,omitempty"`
}

// Summarize computes the Summary of t. An empty table yields a Summary
// with only Source and Year set.
func Summarize(t *models.CleanTable) (Summary, error) {
	s := Summary{Source: t.Source, Year: t.Year, Names: len(t.Records)}
	if len(t.Records) == 0 {
		return s, nil
	}

	counts := make(stats.Float64Data, len(t.Records))
	for i, r := range t.Records {
		counts[i] = float64(r.Count)
		s.Total += r.Count
		if r.Count > s.Max || s.TopName == "" {
			s.Max = r.Count
			s.TopName = r.Name
		}
	}

	var err error
	if s.Mean, err = counts.Mean(); err != nil {
		return s, err
	}
	if s.Median, err = counts.Median(); err != nil {
		return s, err
	}
	return s, nil
}
