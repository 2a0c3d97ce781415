package models

import "testing"

func TestConcat(t *testing.T) {
	tables := []CleanTable{
		{Source: "b.xlsx", Year: 2016, Records: []CleanRecord{{"Oliver", 10}, {"Jack", 9}}},
		{Source: "a.xlsx", Year: 2015, Records: []CleanRecord{{"Amelia", 8}}},
		{Source: "c.xlsx", Year: 2016, Records: []CleanRecord{{"Olivia", 7}}},
	}

	got := Concat(tables)
	want := []LongRecord{
		{Year: 2015, Rank: 1, Name: "Amelia", Count: 8, Source: "a.xlsx"},
		{Year: 2016, Rank: 1, Name: "Oliver", Count: 10, Source: "b.xlsx"},
		{Year: 2016, Rank: 2, Name: "Jack", Count: 9, Source: "b.xlsx"},
		{Year: 2016, Rank: 1, Name: "Olivia", Count: 7, Source: "c.xlsx"},
	}
	if len(got) != len(want) {
		t.Fatalf("Concat returned %d records, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	if tables[0].Year != 2016 {
		t.Error("Concat must not reorder its input")
	}
}

func TestNormalizedTableIndex(t *testing.T) {
	table := NormalizedTable{Columns: []string{"Name", "Count"}}
	if table.Index("Count") != 1 {
		t.Errorf("Index(Count) = %d", table.Index("Count"))
	}
	if table.Has("Change") {
		t.Error("Has(Change) should be false")
	}
}
