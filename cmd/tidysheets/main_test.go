package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tidysheets-go/internal/testutil"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets"
	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.Execute()
	return out.String(), err
}

func yearlyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteWorkbook(t, dir, "2015.xlsx",
		testutil.Sheet{Name: "2015 Table 1 Boys", Rows: testutil.NamesRows(testutil.ChangeHeader(), 3, true)},
	)
	testutil.WriteWorkbook(t, dir, "2016.xlsx",
		testutil.Sheet{Name: "Contents", Rows: [][]interface{}{{"Contents"}}},
		testutil.Sheet{Name: "Table 1 - 2016", Rows: testutil.NamesRows(testutil.PlainHeader(), 2, false)},
	)
	return dir
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", yearlyDir(t))
	require.NoError(t, err)

	var records []models.LongRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 10)
	assert.Equal(t, 2015, records[0].Year)
	assert.Equal(t, "A01", records[0].Name)
	assert.Equal(t, 4, records[3].Rank)
	assert.Equal(t, "B01", records[3].Name)
	assert.Equal(t, 2016, records[9].Year)
}

func TestRunCSVToFile(t *testing.T) {
	dir := yearlyDir(t)
	outFile := filepath.Join(t.TempDir(), "names.csv")

	_, err := execute(t, "run", dir, "--format", "csv", "-o", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "year,rank,name,count,source", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2015,1,A01,5000,"))
}

func TestRunXLSX(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "names.xlsx")
	_, err := execute(t, "run", yearlyDir(t), "--format", "xlsx", "--output", outFile)
	require.NoError(t, err)

	f, err := excelize.OpenFile(outFile)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("tidy")
	require.NoError(t, err)
	assert.Len(t, rows, 11)

	_, err = execute(t, "run", yearlyDir(t), "--format", "xlsx")
	assert.Error(t, err, "xlsx without --output must fail")
}

func TestRunReportsFailures(t *testing.T) {
	dir := yearlyDir(t)
	testutil.WriteWorkbook(t, dir, "2017.xlsx",
		testutil.Sheet{Name: "Summary", Rows: [][]interface{}{{"no data"}}},
	)

	out, err := execute(t, "run", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 files failed")

	var records []models.LongRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 10, "good files are still written")
}

func TestRunMissingDir(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, tidysheets.ErrNotFound))
}

func TestRunFlagsOverridePattern(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteWorkbook(t, dir, "2018.xlsx",
		testutil.Sheet{Name: "Top names 2018", Rows: testutil.NamesRows(testutil.PlainHeader(), 2, false)},
	)

	_, err := execute(t, "run", dir)
	require.Error(t, err)

	out, err := execute(t, "run", dir, "--pattern", "Top names", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, `"name":"B02"`)
}

func TestSheets(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteWorkbook(t, dir, "2015.xlsx",
		testutil.Sheet{Name: "Contents"},
		testutil.Sheet{Name: "2015 Table 1 Boys"},
	)

	out, err := execute(t, "sheets", path)
	require.NoError(t, err)
	assert.Equal(t, "  Contents\n* 2015 Table 1 Boys\n", out)

	ambiguous := testutil.WriteWorkbook(t, dir, "two.xlsx",
		testutil.Sheet{Name: "Table 1 Boys"},
		testutil.Sheet{Name: "Table 1 Girls"},
	)
	out, err = execute(t, "sheets", ambiguous)
	assert.ErrorIs(t, err, tidysheets.ErrAmbiguousSheet)
	assert.Equal(t, "? Table 1 Boys\n? Table 1 Girls\n", out)
}

func TestSummary(t *testing.T) {
	out, err := execute(t, "summary", yearlyDir(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "YEAR"))
	assert.Contains(t, lines[1], "A01 (5000)")
	assert.True(t, strings.HasPrefix(lines[2], "2016"))
}
