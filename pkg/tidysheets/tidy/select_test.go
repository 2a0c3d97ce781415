package tidy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

func TestBlockColumns(t *testing.T) {
	assert.Equal(t, []string{"Name", "Count", "Name.1", "Count.1"}, BlockColumns("Name", "Count", 2))
	assert.Equal(t, []string{"Name", "Count"}, BlockColumns("Name", "Count", 1))
	assert.Empty(t, BlockColumns("Name", "Count", 0))
	assert.Equal(t, []ColumnPair{{"Name", "Count"}, {"Name.1", "Count.1"}, {"Name.2", "Count.2"}},
		BlockPairs("Name", "Count", 3))
}

func TestSelect(t *testing.T) {
	table := &models.NormalizedTable{
		Columns: []string{"Unnamed: 0", "Name", "Count", "Change", "Name.1", "Count.1", "Change.1"},
		Rows: []models.Row{
			{int64(1), "Oliver", int64(6941), "+1", "Max", int64(1209), "-2"},
		},
	}

	out, err := Select(table, BlockColumns("Name", "Count", 2))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Count", "Name.1", "Count.1"}, out.Columns)
	assert.Equal(t, models.Row{"Oliver", int64(6941), "Max", int64(1209)}, out.Rows[0])
	assert.Len(t, table.Columns, 7, "input must not be modified")
}

func TestSelectReordersColumns(t *testing.T) {
	table := &models.NormalizedTable{
		Columns: []string{"Count", "Name"},
		Rows:    []models.Row{{int64(3), "Ava"}},
	}

	out, err := Select(table, []string{"Name", "Count"})
	require.NoError(t, err)
	assert.Equal(t, models.Row{"Ava", int64(3)}, out.Rows[0])
}

func TestSelectMissingColumns(t *testing.T) {
	table := &models.NormalizedTable{Columns: []string{"Name", "Count", "Change"}}

	_, err := Select(table, BlockColumns("Name", "Count", 2))
	require.ErrorIs(t, err, models.ErrSchema)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"Name.1", "Count.1"}, schemaErr.Missing)
	assert.Contains(t, err.Error(), "Name.1")
}
