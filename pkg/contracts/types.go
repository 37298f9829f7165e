// Package contracts defines the contract data model for royaltyflow:
// parties, works, royalty shares, and the per-file contract record produced
// by the extraction collaborator. It also provides the normalization
// functions used as deduplication and matching keys throughout the engine.
package contracts

import "math"

// Party represents a party involved in a contract.
type Party struct {
	Name           string `json:"name" yaml:"name"`                                         // Free-text name as it appears in the contract
	Role           string `json:"role" yaml:"role"`                                         // Free-text role (artist, producer, ...), defaults to "party"
	AdditionalInfo string `json:"additional_info,omitempty" yaml:"additional_info,omitempty"` // Optional annotation
}

// Work represents a musical work named by a contract.
type Work struct {
	Title          string `json:"title" yaml:"title"`                                       // Free-text title as it appears in the contract
	WorkType       string `json:"work_type" yaml:"work_type"`                               // Song, Album, EP, Single, ...
	AdditionalInfo string `json:"additional_info,omitempty" yaml:"additional_info,omitempty"` // Optional annotation
}

// RoyaltyShare represents a (party, royalty-type, percentage) contractual
// entitlement to a portion of revenue.
type RoyaltyShare struct {
	PartyName   string  `json:"party_name" yaml:"party_name"`
	RoyaltyType string  `json:"royalty_type" yaml:"royalty_type"` // streaming, publishing, mechanical, ...
	Percentage  float64 `json:"percentage" yaml:"percentage"`     // 0-100 expected but not clamped
	Terms       string  `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// Record aggregates everything extracted from a single contract file.
type Record struct {
	Parties       []Party        `json:"parties" yaml:"parties"`
	Works         []Work         `json:"works" yaml:"works"`
	RoyaltyShares []RoyaltyShare `json:"royalty_shares" yaml:"royalty_shares"`
	Summary       string         `json:"contract_summary,omitempty" yaml:"contract_summary,omitempty"`
}

// ShareKey is the identity key for royalty share deduplication:
// normalized party name, normalized royalty type, percentage rounded
// to two decimals.
type ShareKey struct {
	Party      string
	Type       string
	Percentage float64
}

// Key returns the deduplication identity of a royalty share.
func (rs RoyaltyShare) Key() ShareKey {
	return ShareKey{
		Party:      NormalizeName(rs.PartyName),
		Type:       NormalizeName(rs.RoyaltyType),
		Percentage: math.Round(rs.Percentage*100) / 100,
	}
}

// Empty reports whether the record carries no extracted facts at all.
// Records from partial-extraction failures merge cleanly, contributing
// nothing.
func (r Record) Empty() bool {
	return len(r.Parties) == 0 && len(r.Works) == 0 && len(r.RoyaltyShares) == 0 && r.Summary == ""
}
