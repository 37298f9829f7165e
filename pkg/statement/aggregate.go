// Package statement ingests tabular royalty statement exports: it
// auto-detects the title and payable columns, then sums payable amounts per
// unique title into an Aggregate.
//
// The Aggregate preserves first-seen title order. Matching tie-breaks on
// iteration order, so that order has to be deterministic and independent of
// Go map iteration.
package statement

import "strings"

// Aggregate maps statement-reported titles (as-is, trimmed, case preserved
// as first seen) to summed payable amounts.
type Aggregate struct {
	titles []string
	totals map[string]float64
}

// NewAggregate creates an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{totals: make(map[string]float64)}
}

// Add accumulates an amount under the given title. The title is trimmed;
// the first-seen casing is kept as the canonical key.
func (a *Aggregate) Add(title string, amount float64) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	if _, seen := a.totals[title]; !seen {
		a.titles = append(a.titles, title)
	}
	a.totals[title] += amount
}

// Len returns the number of unique titles.
func (a *Aggregate) Len() int {
	return len(a.titles)
}

// Titles returns the statement titles in first-seen order.
func (a *Aggregate) Titles() []string {
	out := make([]string, len(a.titles))
	copy(out, a.titles)
	return out
}

// Total returns the summed payable amount for an exact statement title.
func (a *Aggregate) Total(title string) (float64, bool) {
	total, ok := a.totals[title]
	return total, ok
}

// Each calls fn for every title in first-seen order until fn returns false.
func (a *Aggregate) Each(fn func(title string, total float64) bool) {
	for _, title := range a.titles {
		if !fn(title, a.totals[title]) {
			return
		}
	}
}
