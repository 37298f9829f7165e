package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/greenbox/royaltyflow/pkg/payout"
)

// Table renders the payment list as an aligned text table, one row per
// payment record, in calculation order.
func Table(w io.Writer, payments []payout.Payment) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{
		"Song Title", "Payee Name", "Role", "Royalty Type",
		"Share %", "Total Royalty", "Amount to Pay",
	})

	for _, p := range payments {
		table.Append([]string{
			p.WorkTitle,
			p.PartyName,
			p.Role,
			p.RoyaltyType,
			fmt.Sprintf("%g%%", p.Percentage),
			Money(p.RevenueTotal),
			Money(p.AmountToPay),
		})
	}

	table.Render()
	return nil
}
