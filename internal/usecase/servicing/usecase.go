package servicing

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainLoan "loanledger/internal/domain/loan"
	"loanledger/internal/domain/uow"

	"gorm.io/gorm"
)

// Usecase drives the loan lifecycle. Every mutation runs inside a
// transaction that locks the loan row first, so concurrent submissions of
// the same action serialize instead of losing updates.
type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*StatusDTO, error) {
	return u.transition(ctx, in.LoanID, domainLoan.ActionApprove, nil)
}

func (u *Usecase) Reject(ctx context.Context, in RejectInput) (*StatusDTO, error) {
	return u.transition(ctx, in.LoanID, domainLoan.ActionReject, nil)
}

func (u *Usecase) AssignLender(ctx context.Context, in AssignLenderInput) (*StatusDTO, error) {
	if in.LenderID == "" || len(in.LenderID) != 32 {
		return nil, errors.New("invalid lender id")
	}
	return u.transition(ctx, in.LoanID, domainLoan.ActionAssignLender, func(l *domainLoan.Loan) error {
		lenderID, lenderName := in.LenderID, in.LenderName
		l.LenderID = &lenderID
		l.LenderName = &lenderName
		return nil
	})
}

func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*StatusDTO, error) {
	return u.transition(ctx, in.LoanID, domainLoan.ActionDisburse, func(l *domainLoan.Loan) error {
		if in.LenderID != "" && (l.LenderID == nil || *l.LenderID != in.LenderID) {
			return fmt.Errorf("lender %s is not bound to loan %s: %w",
				in.LenderID, l.LoanID, domainLoan.ErrLenderRequired)
		}
		now := time.Now().UTC()
		l.DisbursedAt = &now
		return nil
	})
}

// RecordPayment sets one installment's paid flag and promotes the loan to
// completed once the whole schedule is paid.
func (u *Usecase) RecordPayment(ctx context.Context, in RecordPaymentInput) (*StatusDTO, error) {
	var dto *StatusDTO

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if _, err := domainLoan.Transition(l.Status, domainLoan.ActionRecordPayment, l.LenderBound()); err != nil {
			return err
		}

		var target *domainLoan.Repayment
		for i := range l.Repayments {
			if l.Repayments[i].Month == in.Month {
				target = &l.Repayments[i]
				break
			}
		}
		if target == nil {
			return domainLoan.ErrRepaymentNotFound
		}

		if target.Paid != in.Paid {
			now := time.Now().UTC()
			if err := r.Repayments.SetPaid(ctx, target.ID, in.Paid, now); err != nil {
				return err
			}
			target.Paid = in.Paid
			if in.Paid {
				target.PaidAt = &now
			} else {
				target.PaidAt = nil
			}
		}

		if next := domainLoan.ResolveCompletion(l); next != l.Status {
			l.Status = next
			l.StatusUpdatedAt = time.Now().UTC()
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		dto = toStatusDTO(l)
		return nil
	})

	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// transition applies one lifecycle action under a row lock. mutate, when
// non-nil, adjusts loan fields after the guard passes and before the save.
func (u *Usecase) transition(ctx context.Context, loanID string, act domainLoan.Action, mutate func(*domainLoan.Loan) error) (*StatusDTO, error) {
	var dto *StatusDTO

	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		next, err := domainLoan.Transition(l.Status, act, l.LenderBound())
		if err != nil {
			return err
		}
		if mutate != nil {
			if err := mutate(l); err != nil {
				return err
			}
		}
		l.Status = next
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toStatusDTO(l)
		return nil
	})

	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

func toStatusDTO(l *domainLoan.Loan) *StatusDTO {
	paid := 0
	for i := range l.Repayments {
		if l.Repayments[i].Paid {
			paid++
		}
	}
	return &StatusDTO{
		LoanID:            l.LoanID,
		Status:            string(l.Status),
		StatusUpdatedAt:   l.StatusUpdatedAt,
		LenderID:          l.LenderID,
		DisbursedAt:       l.DisbursedAt,
		PaidInstallments:  paid,
		TotalInstallments: len(l.Repayments),
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainLoan.ErrNotFound
	}
	return err
}
