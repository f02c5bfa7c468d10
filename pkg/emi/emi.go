package emi

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrNonPositivePrincipal = errors.New("principal must be positive")
	ErrNonPositiveRate      = errors.New("annual rate must be positive")
	ErrNonPositiveTerm      = errors.New("term must be positive")
)

// Installment is one row of a flat repayment schedule.
type Installment struct {
	Month  int             `json:"month"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Paid   bool            `json:"paid"`
}

// Schedule splits principal into months equal installments of
// principal/months, rounded half-up to two decimals, labelled
// "Month 1".."Month n", all unpaid. months < 1 is treated as 1.
// Deterministic: same inputs always give the same amounts.
func Schedule(principal decimal.Decimal, months int) ([]Installment, error) {
	if principal.Sign() <= 0 {
		return nil, ErrNonPositivePrincipal
	}
	if months < 1 {
		months = 1
	}

	per := principal.Div(decimal.NewFromInt(int64(months))).Round(2)

	out := make([]Installment, 0, months)
	for i := 1; i <= months; i++ {
		out = append(out, Installment{
			Month:  i,
			Label:  fmt.Sprintf("Month %d", i),
			Amount: per,
		})
	}
	return out, nil
}

// MonthlyPayment computes the amortized EMI:
//
//	P·r·(1+r)^n / ((1+r)^n − 1)
//
// with r = annualRate/12/100, rounded half-up to two decimals.
// Non-positive principal, rate, or term is an error.
func MonthlyPayment(principal decimal.Decimal, annualRate float64, months int) (decimal.Decimal, error) {
	switch {
	case principal.Sign() <= 0:
		return decimal.Zero, ErrNonPositivePrincipal
	case annualRate <= 0:
		return decimal.Zero, ErrNonPositiveRate
	case months <= 0:
		return decimal.Zero, ErrNonPositiveTerm
	}

	p := principal.InexactFloat64()
	r := annualRate / 12 / 100
	factor := math.Pow(1+r, float64(months))
	pay := p * r * factor / (factor - 1)

	return decimal.NewFromFloat(pay).Round(2), nil
}
