// Package report serializes calculated payment records for human and
// machine consumption. Serializers group and format freely but never alter
// the underlying amounts.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/greenbox/royaltyflow/pkg/payout"
)

// printer renders currency amounts with thousands separators for display.
var printer = message.NewPrinter(language.English)

// Money formats an amount for display. Display only; stored values are
// never rounded.
func Money(amount float64) string {
	return printer.Sprintf("$%.2f", amount)
}

// Console writes a payee-grouped payment summary with a grand total.
func Console(w io.Writer, payments []payout.Payment) error {
	if len(payments) == 0 {
		_, err := fmt.Fprintln(w, "No payments calculated")
		return err
	}

	for _, payee := range payout.SummarizeByPayee(payments) {
		fmt.Fprintf(w, "\n%s (%s)\n", payee.PartyName, payee.Role)
		fmt.Fprintf(w, "  Total payment: %s\n", Money(payee.Total))
		fmt.Fprintln(w, "  Breakdown:")
		for _, p := range payee.Payments {
			fmt.Fprintf(w, "    %s: %g%% of %s = %s\n",
				p.WorkTitle, p.Percentage, Money(p.RevenueTotal), Money(p.AmountToPay))
		}
	}

	_, err := fmt.Fprintf(w, "\nGrand total: %s\n", Money(payout.GrandTotal(payments)))
	return err
}
