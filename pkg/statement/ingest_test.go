package statement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbox/royaltyflow/pkg/errors"
)

func TestIngest(t *testing.T) {
	rows := [][]string{
		{"Release Title", "Country", "Net Payable"},
		{"Home", "US", "100.50"},
		{"Home", "DE", "24.50"},
		{"Midnight (feat. X)", "US", "75"},
	}

	agg, err := Ingest(rows, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Home", "Midnight (feat. X)"}, agg.Titles())

	total, ok := agg.Total("Home")
	require.True(t, ok)
	assert.InDelta(t, 125.0, total, 1e-9)

	total, ok = agg.Total("Midnight (feat. X)")
	require.True(t, ok)
	assert.InDelta(t, 75.0, total, 1e-9)
}

func TestIngestSkipsBadRows(t *testing.T) {
	rows := [][]string{
		{"Title", "Net Payable"},
		{"", "10.00"},            // empty title
		{"   ", "10.00"},         // blank title
		{"Home", "n/a"},          // non-numeric payable
		{"Home"},                 // short row, payable cell missing
		{"Home", "10.00", "ext"}, // extra cells are fine
	}

	agg, err := Ingest(rows, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, agg.Len())
	total, _ := agg.Total("Home")
	assert.InDelta(t, 10.0, total, 1e-9)
}

func TestIngestBlankHeaderKeepsIndices(t *testing.T) {
	// A blank header cell must not shift data column positions.
	rows := [][]string{
		{"", "Release Title", "Net Payable"},
		{"x", "Home", "42.00"},
	}

	agg, err := Ingest(rows, nil)
	require.NoError(t, err)

	total, ok := agg.Total("Home")
	require.True(t, ok)
	assert.InDelta(t, 42.0, total, 1e-9)
}

func TestIngestColumnOverrides(t *testing.T) {
	rows := [][]string{
		{"Song", "Paid Out"},
		{"Home", "12.34"},
	}

	// No synonym matches "Song" or "Paid Out"; overrides are required.
	_, err := Ingest(rows, nil)
	assert.True(t, errors.IsColumnNotFound(err))

	agg, err := Ingest(rows, &Options{TitleColumn: "song", PayableColumn: "Paid Out"})
	require.NoError(t, err)
	total, ok := agg.Total("Home")
	require.True(t, ok)
	assert.InDelta(t, 12.34, total, 1e-9)
}

func TestIngestUnknownOverride(t *testing.T) {
	rows := [][]string{
		{"Release Title", "Net Payable"},
		{"Home", "10"},
	}

	_, err := Ingest(rows, &Options{PayableColumn: "nope"})
	assert.True(t, errors.IsColumnNotFound(err))
}

func TestIngestEmptyInput(t *testing.T) {
	_, err := Ingest(nil, nil)
	assert.Error(t, err)
}

func TestIngestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.csv")
	data := "Release Title,Net Payable\nHome,100.50\nHome,24.50\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	agg, err := IngestFile(path, nil)
	require.NoError(t, err)
	total, ok := agg.Total("Home")
	require.True(t, ok)
	assert.InDelta(t, 125.0, total, 1e-9)
}

func TestIngestFileTSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statement.tsv")
	data := "Release Title\tNet Payable\nHome\t10\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	agg, err := IngestFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, agg.Len())
}

func TestIngestFileMissing(t *testing.T) {
	_, err := IngestFile(filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.Error(t, err)
}

func TestAggregateOrderAndCasing(t *testing.T) {
	agg := NewAggregate()
	agg.Add(" Home ", 1)
	agg.Add("Midnight", 2)
	agg.Add("Home", 3)

	assert.Equal(t, []string{"Home", "Midnight"}, agg.Titles())

	var seen []string
	agg.Each(func(title string, _ float64) bool {
		seen = append(seen, title)
		return true
	})
	assert.Equal(t, []string{"Home", "Midnight"}, seen)
}
