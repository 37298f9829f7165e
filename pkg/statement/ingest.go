package statement

import (
	"strconv"
	"strings"

	"github.com/greenbox/royaltyflow/pkg/errors"
	"github.com/greenbox/royaltyflow/pkg/logging"
)

// Options configures statement ingestion. Explicit column overrides bypass
// auto-detection entirely but must still exist in the header set.
type Options struct {
	TitleColumn   string // case-insensitive header name
	PayableColumn string
}

// Ingest builds a per-title aggregate from tabular rows. The first row is
// the header row; subsequent rows are data. Rows with an empty title cell or
// a non-numeric payable cell are skipped, not fatal. Missing trailing cells
// are tolerated.
func Ingest(rows [][]string, opts *Options) (*Aggregate, error) {
	if opts == nil {
		opts = &Options{}
	}
	if len(rows) == 0 {
		return nil, errors.NewColumnNotFoundError("title", opts.TitleColumn, nil)
	}

	headers := NormalizeHeaders(rows[0])

	titleIdx, err := resolveColumn(headers, "title", opts.TitleColumn, DetectTitleColumn)
	if err != nil {
		return nil, err
	}
	payableIdx, err := resolveColumn(headers, "payable", opts.PayableColumn, DetectPayableColumn)
	if err != nil {
		return nil, err
	}

	logging.Debug().
		Str("title_column", headers[titleIdx]).
		Str("payable_column", headers[payableIdx]).
		Msg("Resolved statement columns")

	agg := NewAggregate()
	for _, row := range rows[1:] {
		if titleIdx >= len(row) || payableIdx >= len(row) {
			continue
		}

		title := strings.TrimSpace(row[titleIdx])
		if title == "" {
			continue
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(row[payableIdx]), 64)
		if err != nil {
			// Non-numeric payable cells are silently skipped.
			continue
		}

		agg.Add(title, amount)
	}

	logging.Info().
		Int("titles", agg.Len()).
		Msg("Read royalty statement")

	return agg, nil
}

// resolveColumn applies an explicit override when supplied, otherwise runs
// the auto-detector.
func resolveColumn(headers []string, kind, override string, detect func([]string) (int, error)) (int, error) {
	if override != "" {
		return FindColumn(headers, kind, override)
	}
	return detect(headers)
}
