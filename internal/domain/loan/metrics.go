package loan

import "github.com/shopspring/decimal"

// Metrics are portfolio aggregates over a loan collection, recomputed on
// every read. Amounts are rounded to two decimals.
type Metrics struct {
	Loans             int     `json:"loans"`
	TotalPrincipal    float64 `json:"total_principal"`
	TotalDisbursed    float64 `json:"total_disbursed"`
	TotalExpected     float64 `json:"total_expected"`
	TotalReceived     float64 `json:"total_received"`
	PendingCollection float64 `json:"pending_collection"`
}

// disbursedStatuses are counted toward total disbursed capital.
var disbursedStatuses = map[Status]bool{
	StatusApproved:  true,
	StatusDisbursed: true,
	StatusCompleted: true,
}

// Aggregate reduces a loan slice (already scoped to a role upstream) to
// portfolio metrics: total principal, disbursed capital, expected repayment,
// received repayment, and pending collection = max(expected − received, 0).
func Aggregate(loans []Loan) Metrics {
	principal := decimal.Zero
	disbursed := decimal.Zero
	expected := decimal.Zero
	received := decimal.Zero

	for i := range loans {
		l := &loans[i]
		p := decimal.NewFromFloat(l.Principal)
		principal = principal.Add(p)
		if disbursedStatuses[l.Status] {
			disbursed = disbursed.Add(p)
		}
		for j := range l.Repayments {
			amt := decimal.NewFromFloat(l.Repayments[j].Amount)
			expected = expected.Add(amt)
			if l.Repayments[j].Paid {
				received = received.Add(amt)
			}
		}
	}

	pending := expected.Sub(received)
	if pending.Sign() < 0 {
		pending = decimal.Zero
	}

	return Metrics{
		Loans:             len(loans),
		TotalPrincipal:    principal.Round(2).InexactFloat64(),
		TotalDisbursed:    disbursed.Round(2).InexactFloat64(),
		TotalExpected:     expected.Round(2).InexactFloat64(),
		TotalReceived:     received.Round(2).InexactFloat64(),
		PendingCollection: pending.Round(2).InexactFloat64(),
	}
}
