package statement

import (
	"strings"

	"github.com/greenbox/royaltyflow/pkg/errors"
)

// Title column synonyms, checked in file order against normalized headers.
var titleSynonyms = []string{
	"release title", "title", "song title", "track title",
	"song name", "track name", "release name", "track",
}

// High-precision payable synonyms checked first.
var payableSynonyms = []string{
	"net payable", "net payment", "total payable", "net revenue", "net amount",
}

// Loose payable synonyms used as a fallback.
var payableFallbacks = []string{"payable", "amount", "earnings", "payment"}

// Headers containing any of these are never revenue columns; this prevents
// mis-selecting a fee or holdback column during the fallback pass.
var payableExclusions = []string{"withheld", "deduction", "fee"}

// NormalizeHeaders lower-cases and trims every header cell. Blank cells stay
// in place as empty strings so column indices are preserved; detection skips
// them.
func NormalizeHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return headers
}

// nonBlank filters empty header cells for error reporting.
func nonBlank(headers []string) []string {
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

// DetectTitleColumn scans normalized headers in file order and returns the
// index of the first header containing any title synonym.
func DetectTitleColumn(headers []string) (int, error) {
	for i, header := range headers {
		if header == "" {
			continue
		}
		for _, syn := range titleSynonyms {
			if strings.Contains(header, syn) {
				return i, nil
			}
		}
	}
	return -1, errors.NewColumnNotFoundError("title", "", nonBlank(headers))
}

// DetectPayableColumn resolves the payable column in two passes: a
// high-precision pass over specific synonyms, then a loose fallback pass
// that rejects withheld/deduction/fee columns.
func DetectPayableColumn(headers []string) (int, error) {
	for i, header := range headers {
		if header == "" {
			continue
		}
		for _, syn := range payableSynonyms {
			if header == syn || strings.Contains(header, syn) {
				return i, nil
			}
		}
	}

	for i, header := range headers {
		if header == "" {
			continue
		}
		for _, syn := range payableFallbacks {
			if strings.Contains(header, syn) && !excluded(header) {
				return i, nil
			}
		}
	}

	return -1, errors.NewColumnNotFoundError("payable", "", nonBlank(headers))
}

func excluded(header string) bool {
	for _, word := range payableExclusions {
		if strings.Contains(header, word) {
			return true
		}
	}
	return false
}

// FindColumn resolves an explicitly named column, case-insensitively,
// against the normalized header set.
func FindColumn(headers []string, kind, name string) (int, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, header := range headers {
		if header != "" && header == want {
			return i, nil
		}
	}
	return -1, errors.NewColumnNotFoundError(kind, want, nonBlank(headers))
}
