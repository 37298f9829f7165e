// Package payout computes per-contributor, per-work payment records from a
// merged contract record and a statement aggregate. Arithmetic is
// deterministic and auditable: every amount is derivable purely from the
// matched revenue total and the share percentage, with no rounding and no
// percentage normalization.
package payout

import (
	"strings"

	"github.com/greenbox/royaltyflow/pkg/contracts"
	"github.com/greenbox/royaltyflow/pkg/errors"
	"github.com/greenbox/royaltyflow/pkg/logging"
	"github.com/greenbox/royaltyflow/pkg/match"
	"github.com/greenbox/royaltyflow/pkg/statement"
)

// Payment is one calculated royalty payment. It is never mutated after
// creation; AmountToPay is always RevenueTotal * Percentage / 100.
type Payment struct {
	WorkTitle    string  `json:"work_title" yaml:"work_title"`
	PartyName    string  `json:"party_name" yaml:"party_name"`
	Role         string  `json:"role" yaml:"role"`
	RoyaltyType  string  `json:"royalty_type" yaml:"royalty_type"`
	Percentage   float64 `json:"percentage" yaml:"percentage"`
	RevenueTotal float64 `json:"total_royalty" yaml:"total_royalty"`
	AmountToPay  float64 `json:"amount_to_pay" yaml:"amount_to_pay"`
}

// RoleUnknown is assigned when no party matches a share's party name.
const RoleUnknown = "Unknown"

// Calculate produces the ordered payment list for a merged contract record
// and a statement aggregate.
//
// Only royalty shares whose type contains "streaming" (case-insensitive)
// produce payments; other share types are retained in the data model but
// unallocated. Output is grouped by work in record order, then by share in
// record order. A work with no statement match yields no records and does
// not abort the run.
func Calculate(record contracts.Record, agg *statement.Aggregate) ([]Payment, error) {
	if len(record.Works) == 0 {
		return nil, errors.NewInvalidContractDataError("no works found in the provided contract data")
	}
	if len(record.RoyaltyShares) == 0 {
		return nil, errors.NewInvalidContractDataError("no royalty share data found in the provided contract data")
	}
	if agg == nil || agg.Len() == 0 {
		return nil, errors.NewEmptyStatementError("")
	}

	streaming := streamingShares(record.RoyaltyShares)
	if len(streaming) == 0 {
		logging.Warn().Msg("No streaming royalty shares found in contract data")
		return []Payment{}, nil
	}

	payments := make([]Payment, 0, len(record.Works)*len(streaming))
	for _, work := range record.Works {
		matched, ok := match.Find(work.Title, agg)
		if !ok {
			logging.Warn().
				Str("work", work.Title).
				Msg("Work not found in royalty statement")
			continue
		}

		logging.Info().
			Str("work", work.Title).
			Str("statement_title", matched.StatementTitle).
			Float64("total_royalty", matched.Total).
			Msg("Matched work in statement")

		for _, share := range streaming {
			payments = append(payments, Payment{
				WorkTitle:    work.Title,
				PartyName:    share.PartyName,
				Role:         resolveRole(record.Parties, share.PartyName),
				RoyaltyType:  share.RoyaltyType,
				Percentage:   share.Percentage,
				RevenueTotal: matched.Total,
				AmountToPay:  matched.Total * share.Percentage / 100.0,
			})
		}
	}

	logging.Info().Int("payments", len(payments)).Msg("Calculated payments")
	return payments, nil
}

// streamingShares filters shares to those allocated by the engine.
func streamingShares(shares []contracts.RoyaltyShare) []contracts.RoyaltyShare {
	out := make([]contracts.RoyaltyShare, 0, len(shares))
	for _, share := range shares {
		if strings.Contains(strings.ToLower(share.RoyaltyType), "streaming") {
			out = append(out, share)
		}
	}
	return out
}

// resolveRole looks up a party by exact case-insensitive name equality.
// No fuzzy matching here: this is deliberately stricter than the
// parenthetical-stripping normalization used for dedup.
func resolveRole(parties []contracts.Party, partyName string) string {
	for _, party := range parties {
		if strings.EqualFold(party.Name, partyName) {
			return party.Role
		}
	}
	return RoleUnknown
}
