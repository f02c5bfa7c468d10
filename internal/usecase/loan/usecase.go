package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loanledger/internal/domain/loan"
	"loanledger/pkg/emi"
	"loanledger/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct{ repo loan.Repository }

func NewUsecase(r loan.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.BorrowerID == "" || len(in.BorrowerID) != 32 || in.Principal <= 0 || in.TermMonths < 1 {
		return nil, errors.New("invalid input")
	}

	schedule, err := emi.Schedule(decimal.NewFromFloat(in.Principal), in.TermMonths)
	if err != nil {
		return nil, fmt.Errorf("generate schedule: %w", err)
	}

	repayments := make([]loan.Repayment, 0, len(schedule))
	for _, s := range schedule {
		repayments = append(repayments, loan.Repayment{
			Month:  s.Month,
			Label:  s.Label,
			Amount: s.Amount.InexactFloat64(),
		})
	}

	l := &loan.Loan{
		LoanID:          id.NewID32(),
		BorrowerID:      in.BorrowerID,
		BorrowerName:    in.BorrowerName,
		Principal:       in.Principal,
		TermMonths:      in.TermMonths,
		Purpose:         in.Purpose,
		Status:          loan.StatusPending,
		StatusUpdatedAt: time.Now().UTC(),
		Repayments:      repayments,
	}

	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrNotFound
		}
		return nil, err
	}
	return toDTO(l), nil
}

// List returns the role-scoped view of the collection: the borrower's own
// loans, the lender's assigned loans, or everything when the filter is empty.
func (u *Usecase) List(ctx context.Context, f ListFilter) ([]LoanDTO, error) {
	ls, err := u.list(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out, nil
}

// Metrics aggregates the same role-scoped view the list endpoints serve.
func (u *Usecase) Metrics(ctx context.Context, f ListFilter) (*loan.Metrics, error) {
	ls, err := u.list(ctx, f)
	if err != nil {
		return nil, err
	}
	m := loan.Aggregate(ls)
	return &m, nil
}

// Quote previews the amortized monthly payment for given terms. Nothing is
// persisted.
func (u *Usecase) Quote(ctx context.Context, in QuoteInput) (*QuoteDTO, error) {
	pay, err := emi.MonthlyPayment(decimal.NewFromFloat(in.Principal), in.AnnualRate, in.TermMonths)
	if err != nil {
		return nil, err
	}
	total := pay.Mul(decimal.NewFromInt(int64(in.TermMonths)))
	return &QuoteDTO{
		Principal:      in.Principal,
		AnnualRate:     in.AnnualRate,
		TermMonths:     in.TermMonths,
		MonthlyPayment: pay.InexactFloat64(),
		TotalPayable:   total.InexactFloat64(),
	}, nil
}

func (u *Usecase) list(ctx context.Context, f ListFilter) ([]loan.Loan, error) {
	switch {
	case f.BorrowerID != "":
		return u.repo.ListByBorrowerID(ctx, f.BorrowerID)
	case f.LenderID != "":
		return u.repo.ListByLenderID(ctx, f.LenderID)
	default:
		return u.repo.ListAll(ctx)
	}
}
