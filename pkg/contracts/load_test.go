package contracts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	record := Record{
		Parties: []Party{{Name: "Jane Doe", Role: "artist"}},
		Works:   []Work{{Title: "Home", WorkType: "Song"}},
		RoyaltyShares: []RoyaltyShare{
			{PartyName: "Jane Doe", RoyaltyType: "streaming", Percentage: 60},
		},
		Summary: "Jane Doe receives 60% of streaming revenue for Home.",
	}

	path := filepath.Join(t.TempDir(), "contract.yaml")
	require.NoError(t, Save(record, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
