package models

import "sort"

// CleanRecord is one ranked (name, count) entry.
type CleanRecord struct {
	// Name is the value of the block's name column.
	Name string `json:"name"`
	// Count is the integer value of the block's count column.
	Count int64 `json:"count"`
}

// CleanTable is the tidy output of one file. Rank is implied by position.
type CleanTable struct {
	// Source is the path of the file the table came from.
	Source string `json:"source"`
	// Sheet is the located worksheet name.
	Sheet string `json:"sheet"`
	// Year is the year parsed from the sheet or file name (0 if unknown).
	Year int `json:"year"`
	// Records holds rows in rank order.
	Records []CleanRecord `json:"records"`
}

// Rank returns the 1-based rank of the record at index i.
func (t *CleanTable) Rank(i int) int {
	return i + 1
}

// LongRecord is a CleanRecord with its table context, for cross-file output.
type LongRecord struct {
	Year   int    `json:"year"`
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Count  int64  `json:"count"`
	Source string `json:"source"`
}

// Concat flattens tables into one long sequence ordered by year, then
// by the input order of tables sharing a year, then by rank.
func Concat(tables []CleanTable) []LongRecord {
	ordered := make([]CleanTable, len(tables))
	copy(ordered, tables)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Year < ordered[j].Year
	})

	var out []LongRecord
	for _, t := range ordered {
		for i, r := range t.Records {
			out = append(out, LongRecord{
				Year:   t.Year,
				Rank:   t.Rank(i),
				Name:   r.Name,
				Count:  r.Count,
				Source: t.Source,
			})
		}
	}
	return out
}
