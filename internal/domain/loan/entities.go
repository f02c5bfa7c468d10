package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusAssigned  Status = "assigned"
	StatusDisbursed Status = "disbursed"
	StatusCompleted Status = "completed"
)

var (
	ErrNotFound              = errors.New("loan not found")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrTerminalStatus        = errors.New("loan is in a terminal status")
	ErrLenderRequired        = errors.New("loan has no lender assigned")
	ErrLenderAlreadyAssigned = errors.New("loan already has a lender")
	ErrRepaymentNotFound     = errors.New("repayment month not found")
)

type Loan struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	BorrowerID      string         `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	BorrowerName    string         `gorm:"size:128" json:"borrower_name"`
	LenderID        *string        `gorm:"size:32;index:idx_loans_lender" json:"lender_id"`
	LenderName      *string        `gorm:"size:128" json:"lender_name"`
	Principal       float64        `gorm:"type:decimal(18,2)" json:"principal"`
	TermMonths      int            `gorm:"column:term_months" json:"term_months"`
	Purpose         string         `gorm:"type:text" json:"purpose"`
	Status          Status         `gorm:"type:enum('pending','approved','rejected','assigned','disbursed','completed');default:'pending'" json:"status"`
	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	DisbursedAt     *time.Time     `json:"disbursed_at"`
	Repayments      []Repayment    `gorm:"foreignKey:LoanRef;references:ID" json:"repayments"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Repayment is one installment of a loan's schedule. Amount and Label are
// fixed at generation time; only Paid/PaidAt ever change.
type Repayment struct {
	ID        uint64     `gorm:"primaryKey;column:id" json:"-"`
	LoanRef   uint64     `gorm:"column:loan_ref;index:idx_repayments_loan" json:"-"`
	Month     int        `json:"month"`
	Label     string     `gorm:"size:16" json:"label"`
	Amount    float64    `gorm:"type:decimal(18,2)" json:"amount"`
	Paid      bool       `json:"paid"`
	PaidAt    *time.Time `json:"paid_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"-"`
}

func (Repayment) TableName() string { return "repayments" }

// LenderBound reports whether a lender id has been bound to the loan.
func (l *Loan) LenderBound() bool { return l.LenderID != nil && *l.LenderID != "" }

// AllRepaymentsPaid reports whether every installment of a generated
// schedule is paid. A loan without a schedule is never "all paid".
func (l *Loan) AllRepaymentsPaid() bool {
	if len(l.Repayments) == 0 {
		return false
	}
	for i := range l.Repayments {
		if !l.Repayments[i].Paid {
			return false
		}
	}
	return true
}
