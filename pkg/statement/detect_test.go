package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbox/royaltyflow/pkg/errors"
)

func TestNormalizeHeaders(t *testing.T) {
	headers := NormalizeHeaders([]string{" Release Title ", "", "NET Payable"})

	// Blank cells stay in place so detected indices line up with the raw row.
	assert.Equal(t, []string{"release title", "", "net payable"}, headers)
}

func TestDetectTitleColumn(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    int
	}{
		{name: "release title", headers: []string{"isrc", "release title", "net payable"}, want: 1},
		{name: "bare title", headers: []string{"title", "amount"}, want: 0},
		{name: "track name", headers: []string{"period", "track name", "earnings"}, want: 1},
		{name: "substring match", headers: []string{"primary song title", "net payable"}, want: 0},
		{name: "skips blank headers", headers: []string{"", "song title"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := DetectTitleColumn(NormalizeHeaders(tt.headers))
			require.NoError(t, err)
			assert.Equal(t, tt.want, idx)
		})
	}
}

func TestDetectTitleColumnNotFound(t *testing.T) {
	_, err := DetectTitleColumn(NormalizeHeaders([]string{"isrc", "net payable"}))
	require.Error(t, err)
	assert.True(t, errors.IsColumnNotFound(err))
	assert.Contains(t, err.Error(), "net payable")
}

func TestDetectPayableColumn(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    int
	}{
		{name: "net payable", headers: []string{"release title", "net payable"}, want: 1},
		{name: "net revenue", headers: []string{"title", "gross", "net revenue"}, want: 2},
		{name: "fallback amount", headers: []string{"title", "amount"}, want: 1},
		{name: "fallback earnings", headers: []string{"title", "earnings"}, want: 1},
		// A precise synonym beats an earlier fallback-only column.
		{name: "precise beats loose", headers: []string{"title", "gross amount", "net payable"}, want: 2},
		// The fallback pass must never pick a holdback column, even when it
		// appears before the real revenue column.
		{name: "withheld excluded", headers: []string{"release title", "withheld amount", "net payable"}, want: 2},
		{name: "fee excluded", headers: []string{"title", "service fee amount", "payment"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := DetectPayableColumn(NormalizeHeaders(tt.headers))
			require.NoError(t, err)
			assert.Equal(t, tt.want, idx)
		})
	}
}

func TestDetectPayableColumnNotFound(t *testing.T) {
	_, err := DetectPayableColumn(NormalizeHeaders([]string{"title", "withheld amount"}))
	require.Error(t, err)
	assert.True(t, errors.IsColumnNotFound(err))
}

func TestFindColumn(t *testing.T) {
	headers := NormalizeHeaders([]string{"Release Title", "", "Net Payable"})

	idx, err := FindColumn(headers, "payable", " NET payable ")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	// Overrides must match a full header, not a substring of one.
	_, err = FindColumn(headers, "payable", "net")
	assert.True(t, errors.IsColumnNotFound(err))
}
