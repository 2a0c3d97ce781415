package tidy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/tidysheets-go/pkg/tidysheets/models"
)

func TestNormalizeLabels(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "duplicate pairs",
			input:    []string{"Name", "Count", "Name", "Count"},
			expected: []string{"Name", "Count", "Name.1", "Count.1"},
		},
		{
			name:     "change column between blocks",
			input:    []string{"Name", "Count", "Change", "Name", "Count"},
			expected: []string{"Name", "Count", "Change", "Name.1", "Count.1"},
		},
		{
			name:     "blank labels get positional placeholders",
			input:    []string{"", "Name", " ", "Count"},
			expected: []string{"Unnamed: 0", "Name", "Unnamed: 2", "Count"},
		},
		{
			name:     "all blank",
			input:    []string{"", "", ""},
			expected: []string{"Unnamed: 0", "Unnamed: 1", "Unnamed: 2"},
		},
		{
			name:     "all duplicate",
			input:    []string{"x", "x", "x", "x"},
			expected: []string{"x", "x.1", "x.2", "x.3"},
		},
		{
			name:     "generated suffix collides with a real label",
			input:    []string{"A", "A", "A.1"},
			expected: []string{"A", "A.1", "A.1.1"},
		},
		{
			name:     "whitespace is trimmed",
			input:    []string{"Name ", " Name"},
			expected: []string{"Name", "Name.1"},
		},
		{
			name:     "empty",
			input:    []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLabels(tt.input)
			assert.Equal(t, tt.expected, got)
			assertWellFormed(t, got)
			assert.Equal(t, got, NormalizeLabels(got), "normalizing twice must be a no-op")
		})
	}
}

func TestNormalizeLabelsNeverDuplicates(t *testing.T) {
	inputs := [][]string{
		{"", "Unnamed: 0", ""},
		{"Name.1", "Name", "Name", "Name.1"},
		{"a", "", "a", "", "a.1", "Unnamed: 1"},
	}
	for _, in := range inputs {
		out := NormalizeLabels(in)
		require.Len(t, out, len(in))
		assertWellFormed(t, out)
		assert.Equal(t, out, NormalizeLabels(out))
	}
}

func TestNormalizeDoesNotMutate(t *testing.T) {
	raw := &models.RawTable{
		Columns: []string{"Name", "Name"},
		Rows:    []models.Row{{"Oliver", "Max"}},
	}

	norm := Normalize(raw)
	norm.Rows[0][0] = "changed"

	assert.Equal(t, []string{"Name", "Name"}, raw.Columns)
	assert.Equal(t, "Oliver", raw.Rows[0][0])
	assert.Equal(t, []string{"Name", "Name.1"}, norm.Columns)
}

func assertWellFormed(t *testing.T, labels []string) {
	t.Helper()
	seen := make(map[string]bool)
	for _, l := range labels {
		assert.NotEmpty(t, l)
		assert.False(t, seen[l], "duplicate label %q", l)
		seen[l] = true
	}
}
