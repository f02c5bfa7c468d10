package mysql

import (
	"context"
	"time"

	loanDomain "loanledger/internal/domain/loan"

	"gorm.io/gorm"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository {
	return &RepaymentRepository{db: db}
}

// SetPaid touches paid/paid_at only; amount and label stay as generated.
func (r *RepaymentRepository) SetPaid(ctx context.Context, repaymentID uint64, paid bool, at time.Time) error {
	var paidAt any
	if paid {
		paidAt = at
	} else {
		paidAt = nil
	}
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Repayment{}).
		Where("id = ?", repaymentID).
		Updates(map[string]any{"paid": paid, "paid_at": paidAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RepaymentRepository) ListByLoanRef(ctx context.Context, loanRef uint64) ([]loanDomain.Repayment, error) {
	var out []loanDomain.Repayment
	res := r.db.WithContext(ctx).
		Where("loan_ref = ?", loanRef).
		Order("month ASC").
		Find(&out)
	return out, res.Error
}
