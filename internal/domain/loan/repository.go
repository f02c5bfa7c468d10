package loan

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists a loan together with its generated schedule.
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the current transaction.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByBorrowerID(ctx context.Context, borrowerID string) ([]Loan, error)
	ListByLenderID(ctx context.Context, lenderID string) ([]Loan, error)
	ListAll(ctx context.Context) ([]Loan, error)
	// Save persists loan fields only, never the schedule rows.
	Save(ctx context.Context, l *Loan) error
}

type RepaymentRepository interface {
	// SetPaid flips one installment's paid flag. Amount and label are
	// immutable after generation, so nothing else is ever written.
	SetPaid(ctx context.Context, repaymentID uint64, paid bool, at time.Time) error
	ListByLoanRef(ctx context.Context, loanRef uint64) ([]Repayment, error)
}
