// Package match resolves contractual work titles against statement
// aggregates using exact-then-substring matching. A miss is an expected
// business outcome, not an error.
package match

import (
	"strings"

	"github.com/greenbox/royaltyflow/pkg/contracts"
	"github.com/greenbox/royaltyflow/pkg/statement"
)

// Match is a resolved (statement title, summed total) pair for a work.
type Match struct {
	StatementTitle string
	Total          float64
}

// Find resolves a work title against the aggregate.
//
// Stage 1 tries case/whitespace-insensitive equality against every statement
// title; stage 2 falls back to substring containment in either direction.
// Both stages take the first hit in the aggregate's first-seen order, which
// makes the tie-break deterministic. The second return value is false when
// nothing matched.
func Find(workTitle string, agg *statement.Aggregate) (Match, bool) {
	want := contracts.NormalizeTitle(workTitle)

	var found Match
	var ok bool

	agg.Each(func(title string, total float64) bool {
		if contracts.NormalizeTitle(title) == want {
			found = Match{StatementTitle: title, Total: total}
			ok = true
			return false
		}
		return true
	})
	if ok {
		return found, true
	}

	agg.Each(func(title string, total float64) bool {
		got := contracts.NormalizeTitle(title)
		if strings.Contains(got, want) || strings.Contains(want, got) {
			found = Match{StatementTitle: title, Total: total}
			ok = true
			return false
		}
		return true
	})

	return found, ok
}
