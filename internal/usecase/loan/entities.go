package loan

import (
	"time"

	"loanledger/internal/domain/loan"
)

type CreateLoanInput struct {
	BorrowerID   string  `json:"borrower_id"`
	BorrowerName string  `json:"borrower_name"`
	Principal    float64 `json:"principal"`
	TermMonths   int     `json:"term_months"`
	Purpose      string  `json:"purpose"`
}

// ListFilter scopes the collection to one role's view. At most one of the
// ids is set; both empty means the full (admin/analyst) view.
type ListFilter struct {
	BorrowerID string
	LenderID   string
}

type QuoteInput struct {
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	TermMonths int     `json:"term_months"`
}

type RepaymentDTO struct {
	Month  int        `json:"month"`
	Label  string     `json:"label"`
	Amount float64    `json:"amount"`
	Paid   bool       `json:"paid"`
	PaidAt *time.Time `json:"paid_at,omitempty"`
}

type LoanDTO struct {
	LoanID       string         `json:"loan_id"`
	BorrowerID   string         `json:"borrower_id"`
	BorrowerName string         `json:"borrower_name"`
	LenderID     *string        `json:"lender_id,omitempty"`
	LenderName   *string        `json:"lender_name,omitempty"`
	Principal    float64        `json:"principal"`
	TermMonths   int            `json:"term_months"`
	Purpose      string         `json:"purpose"`
	Status       string         `json:"status"`
	DisbursedAt  *time.Time     `json:"disbursed_at,omitempty"`
	Repayments   []RepaymentDTO `json:"repayments"`
	CreatedAt    time.Time      `json:"created_at"`
}

type QuoteDTO struct {
	Principal      float64 `json:"principal"`
	AnnualRate     float64 `json:"annual_rate"`
	TermMonths     int     `json:"term_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayable   float64 `json:"total_payable"`
}

func toDTO(l *loan.Loan) *LoanDTO {
	reps := make([]RepaymentDTO, 0, len(l.Repayments))
	for i := range l.Repayments {
		r := &l.Repayments[i]
		reps = append(reps, RepaymentDTO{
			Month:  r.Month,
			Label:  r.Label,
			Amount: r.Amount,
			Paid:   r.Paid,
			PaidAt: r.PaidAt,
		})
	}
	return &LoanDTO{
		LoanID:       l.LoanID,
		BorrowerID:   l.BorrowerID,
		BorrowerName: l.BorrowerName,
		LenderID:     l.LenderID,
		LenderName:   l.LenderName,
		Principal:    l.Principal,
		TermMonths:   l.TermMonths,
		Purpose:      l.Purpose,
		Status:       string(l.Status),
		DisbursedAt:  l.DisbursedAt,
		Repayments:   reps,
		CreatedAt:    l.CreatedAt,
	}
}
