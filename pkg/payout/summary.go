package payout

// PayeeSummary aggregates a single payee's payments across works.
type PayeeSummary struct {
	PartyName string
	Role      string
	Total     float64
	Payments  []Payment
}

// SummarizeByPayee groups payments by payee in first-seen order and sums
// each payee's total. Amounts are copied, never altered.
func SummarizeByPayee(payments []Payment) []PayeeSummary {
	index := make(map[string]int)
	var summaries []PayeeSummary

	for _, p := range payments {
		i, seen := index[p.PartyName]
		if !seen {
			i = len(summaries)
			index[p.PartyName] = i
			summaries = append(summaries, PayeeSummary{
				PartyName: p.PartyName,
				Role:      p.Role,
			})
		}
		summaries[i].Total += p.AmountToPay
		summaries[i].Payments = append(summaries[i].Payments, p)
	}

	return summaries
}

// GrandTotal sums the amount to pay across all payments.
func GrandTotal(payments []Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.AmountToPay
	}
	return total
}
