package servicing

import "time"

type ApproveInput struct {
	LoanID     string
	ReviewerID string // 32-char hex
}

type RejectInput struct {
	LoanID     string
	ReviewerID string
	Reason     string
}

type AssignLenderInput struct {
	LoanID     string
	LenderID   string // 32-char hex
	LenderName string
}

type DisburseInput struct {
	LoanID   string
	LenderID string // must match the bound lender
}

type RecordPaymentInput struct {
	LoanID string
	Month  int  // 1-based schedule position
	Paid   bool // target value of the paid flag
}

// StatusDTO is the common result of every servicing action.
type StatusDTO struct {
	LoanID            string     `json:"loan_id"`
	Status            string     `json:"status"`
	StatusUpdatedAt   time.Time  `json:"status_updated_at"`
	LenderID          *string    `json:"lender_id,omitempty"`
	DisbursedAt       *time.Time `json:"disbursed_at,omitempty"`
	PaidInstallments  int        `json:"paid_installments"`
	TotalInstallments int        `json:"total_installments"`
}
