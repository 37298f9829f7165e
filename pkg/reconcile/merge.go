// Package reconcile merges independently-extracted contract records into one
// consistent dataset. Parties, works, and royalty shares are deduplicated on
// normalized identity keys with a first-occurrence-wins policy, so no
// contributor is silently dropped and no share is double-counted across
// overlapping contract uploads.
package reconcile

import (
	"strings"

	"github.com/greenbox/royaltyflow/pkg/contracts"
	"github.com/greenbox/royaltyflow/pkg/logging"
)

// Merge combines an ordered sequence of contract records into one. The merge
// is a pure function of its inputs: no I/O, fresh dedup state per call, and
// deterministic first-occurrence-wins behavior that follows the
// caller-supplied record order. Empty or partially-extracted records merge
// cleanly, contributing nothing.
func Merge(records []contracts.Record) contracts.Record {
	var merged contracts.Record
	var summaries []string

	seenParties := make(map[string]struct{})
	seenWorks := make(map[string]struct{})
	seenShares := make(map[contracts.ShareKey]struct{})

	for _, record := range records {
		if s := strings.TrimSpace(record.Summary); s != "" {
			summaries = append(summaries, record.Summary)
		}

		for _, party := range record.Parties {
			key := contracts.NormalizeName(party.Name)
			if key == "" {
				continue
			}
			if _, seen := seenParties[key]; seen {
				// First occurrence wins, even when the duplicate carries a
				// different role.
				continue
			}
			seenParties[key] = struct{}{}
			merged.Parties = append(merged.Parties, party)
		}

		for _, work := range record.Works {
			key := contracts.NormalizeTitle(work.Title)
			if key == "" {
				continue
			}
			if _, seen := seenWorks[key]; seen {
				continue
			}
			seenWorks[key] = struct{}{}
			merged.Works = append(merged.Works, work)
		}

		for _, share := range record.RoyaltyShares {
			key := share.Key()
			if _, seen := seenShares[key]; seen {
				continue
			}
			seenShares[key] = struct{}{}
			merged.RoyaltyShares = append(merged.RoyaltyShares, share)
		}
	}

	merged.Summary = strings.Join(summaries, "\n")

	logging.Debug().
		Int("records", len(records)).
		Int("parties", len(merged.Parties)).
		Int("works", len(merged.Works)).
		Int("royalty_shares", len(merged.RoyaltyShares)).
		Msg("Merged contract records")

	return merged
}
