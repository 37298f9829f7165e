package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenbox/royaltyflow/pkg/contracts"
)

func testRecord() contracts.Record {
	return contracts.Record{
		Parties: []contracts.Party{
			{Name: "Jane Doe", Role: "artist"},
			{Name: "John Smith", Role: "producer"},
		},
		Works: []contracts.Work{
			{Title: "Home", WorkType: "Song"},
		},
		RoyaltyShares: []contracts.RoyaltyShare{
			{PartyName: "Jane Doe", RoyaltyType: "streaming", Percentage: 50},
			{PartyName: "John Smith", RoyaltyType: "streaming", Percentage: 50},
		},
		Summary: "Jane and John split streaming 50/50 on Home.",
	}
}

func TestMergeDeduplicatesAcrossUploads(t *testing.T) {
	// Two uploads restating the same share must yield exactly one entry.
	merged := Merge([]contracts.Record{testRecord(), testRecord()})

	assert.Len(t, merged.Parties, 2)
	assert.Len(t, merged.Works, 1)
	assert.Len(t, merged.RoyaltyShares, 2)
}

func TestMergeIsIdempotent(t *testing.T) {
	once := Merge([]contracts.Record{testRecord()})
	twice := Merge([]contracts.Record{testRecord(), testRecord()})

	assert.Equal(t, once.Parties, twice.Parties)
	assert.Equal(t, once.Works, twice.Works)
	assert.Equal(t, once.RoyaltyShares, twice.RoyaltyShares)
}

func TestMergeFirstOccurrenceWins(t *testing.T) {
	first := contracts.Record{
		Parties: []contracts.Party{{Name: "Jane Doe", Role: "artist"}},
	}
	second := contracts.Record{
		Parties: []contracts.Party{{Name: "jane doe (writer)", Role: "writer"}},
	}

	merged := Merge([]contracts.Record{first, second})
	require.Len(t, merged.Parties, 1)
	assert.Equal(t, "Jane Doe", merged.Parties[0].Name)
	assert.Equal(t, "artist", merged.Parties[0].Role)
}

func TestMergeOrderIndependentKeySets(t *testing.T) {
	a := contracts.Record{
		Parties: []contracts.Party{{Name: "Jane Doe", Role: "artist"}},
		Works:   []contracts.Work{{Title: "Home"}},
		RoyaltyShares: []contracts.RoyaltyShare{
			{PartyName: "Jane Doe", RoyaltyType: "streaming", Percentage: 60},
		},
	}
	b := contracts.Record{
		Parties: []contracts.Party{
			{Name: "JANE DOE", Role: "writer"},
			{Name: "Bob Ray", Role: "producer"},
		},
		Works: []contracts.Work{{Title: "home "}, {Title: "Midnight"}},
		RoyaltyShares: []contracts.RoyaltyShare{
			{PartyName: "jane doe", RoyaltyType: "Streaming", Percentage: 60},
			{PartyName: "Bob Ray", RoyaltyType: "streaming", Percentage: 40},
		},
	}

	ab := Merge([]contracts.Record{a, b})
	ba := Merge([]contracts.Record{b, a})

	assert.ElementsMatch(t, partyKeys(ab), partyKeys(ba))
	assert.ElementsMatch(t, workKeys(ab), workKeys(ba))
	assert.ElementsMatch(t, shareKeys(ab), shareKeys(ba))
}

func partyKeys(r contracts.Record) []string {
	keys := make([]string, 0, len(r.Parties))
	for _, p := range r.Parties {
		keys = append(keys, contracts.NormalizeName(p.Name))
	}
	return keys
}

func workKeys(r contracts.Record) []string {
	keys := make([]string, 0, len(r.Works))
	for _, w := range r.Works {
		keys = append(keys, contracts.NormalizeTitle(w.Title))
	}
	return keys
}

func shareKeys(r contracts.Record) []contracts.ShareKey {
	keys := make([]contracts.ShareKey, 0, len(r.RoyaltyShares))
	for _, s := range r.RoyaltyShares {
		keys = append(keys, s.Key())
	}
	return keys
}

func TestMergeSkipsBlankIdentities(t *testing.T) {
	record := contracts.Record{
		Parties: []contracts.Party{{Name: "", Role: "artist"}, {Name: "(producer)"}},
		Works:   []contracts.Work{{Title: "   "}},
	}

	merged := Merge([]contracts.Record{record})
	assert.Empty(t, merged.Parties)
	assert.Empty(t, merged.Works)
}

func TestMergeSameShareDifferentTypeOrPercentage(t *testing.T) {
	record := contracts.Record{
		RoyaltyShares: []contracts.RoyaltyShare{
			{PartyName: "Jane Doe", RoyaltyType: "streaming", Percentage: 50},
			{PartyName: "Jane Doe", RoyaltyType: "publishing", Percentage: 50},
			{PartyName: "Jane Doe", RoyaltyType: "streaming", Percentage: 25},
		},
	}

	merged := Merge([]contracts.Record{record})
	assert.Len(t, merged.RoyaltyShares, 3)
}

func TestMergeSummaries(t *testing.T) {
	records := []contracts.Record{
		{Summary: "first"},
		{Summary: "   "},
		{Summary: "second"},
		{},
	}

	merged := Merge(records)
	assert.Equal(t, "first\nsecond", merged.Summary)
}

func TestMergeEmptyInput(t *testing.T) {
	merged := Merge(nil)
	assert.True(t, merged.Empty())
}
