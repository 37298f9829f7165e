package report

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/greenbox/royaltyflow/pkg/errors"
	"github.com/greenbox/royaltyflow/pkg/payout"
)

// Format identifies a payment list serialization format.
type Format string

// Supported output formats.
const (
	FormatSummary Format = "summary"
	FormatTable   Format = "table"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

// Write serializes payments in the requested format.
func Write(w io.Writer, format Format, payments []payout.Payment) error {
	switch format {
	case FormatSummary, "":
		return Console(w, payments)
	case FormatTable:
		return Table(w, payments)
	case FormatCSV:
		return CSV(w, payments)
	case FormatJSON:
		return JSON(w, payments)
	case FormatYAML:
		return YAML(w, payments)
	default:
		return errors.New("unsupported output format: " + string(format))
	}
}

// CSV writes one row per payment with raw (unformatted) amounts, suitable
// for re-import into spreadsheet tooling.
func CSV(w io.Writer, payments []payout.Payment) error {
	cw := csv.NewWriter(w)

	header := []string{
		"work_title", "party_name", "role", "royalty_type",
		"percentage", "total_royalty", "amount_to_pay",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range payments {
		row := []string{
			p.WorkTitle,
			p.PartyName,
			p.Role,
			p.RoyaltyType,
			strconv.FormatFloat(p.Percentage, 'f', -1, 64),
			strconv.FormatFloat(p.RevenueTotal, 'f', -1, 64),
			strconv.FormatFloat(p.AmountToPay, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// JSON writes the payment list as an indented JSON array.
func JSON(w io.Writer, payments []payout.Payment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payments)
}

// YAML writes the payment list as a YAML document.
func YAML(w io.Writer, payments []payout.Payment) error {
	data, err := yaml.Marshal(payments)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
