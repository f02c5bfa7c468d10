package uowmock

import (
	"context"
	"errors"

	"loanledger/internal/domain/loan"
	"loanledger/internal/domain/uow"
	"loanledger/internal/testutil/loanmock"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn     func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanTxFn func(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	if m.WithinLoanTxFn != nil {
		return m.WithinLoanTxFn(ctx, loanID, fn)
	}
	return errUnimplemented
}

// Backed wires a UoW to in-memory loans so lifecycle tests can run without a
// database: every WithinLoanTx locks nothing, just hands back the stored
// loan and saves mutations into the map.
func Backed(loans map[string]*loan.Loan) *UoW {
	repos := uow.Repos{
		Loans: &loanmock.Repo{
			SaveFn: func(ctx context.Context, l *loan.Loan) error {
				loans[l.LoanID] = l
				return nil
			},
		},
		Repayments: &loanmock.RepaymentRepo{},
	}
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinLoanTxFn: func(ctx context.Context, loanID string, fn func(uow.Repos, *loan.Loan) error) error {
			l, ok := loans[loanID]
			if !ok {
				return loan.ErrNotFound
			}
			return fn(repos, l)
		},
	}
}
