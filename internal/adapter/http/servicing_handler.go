package http

import (
	"net/http"
	"strconv"

	"loanledger/internal/usecase/servicing"

	"github.com/labstack/echo/v4"
)

type ServicingHandler struct{ uc *servicing.Usecase }

func NewServicingHandler(uc *servicing.Usecase) *ServicingHandler {
	return &ServicingHandler{uc: uc}
}

type reviewReq struct {
	ReviewerID string `json:"reviewer_id" validate:"required,hex32"`
	Reason     string `json:"reason"      validate:"max=500"`
}

type assignLenderReq struct {
	LenderID   string `json:"lender_id"   validate:"required,hex32"`
	LenderName string `json:"lender_name" validate:"required,max=128"`
}

type disburseReq struct {
	LenderID string `json:"lender_id" validate:"required,hex32"`
}

type recordPaymentReq struct {
	Paid bool `json:"paid"`
}

func (h *ServicingHandler) ApproveLoan(c echo.Context) error {
	loanID, req, ok := h.bindReview(c)
	if !ok {
		return nil // response already written
	}
	dto, err := h.uc.Approve(c.Request().Context(), servicing.ApproveInput{
		LoanID:     loanID,
		ReviewerID: req.ReviewerID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ServicingHandler) RejectLoan(c echo.Context) error {
	loanID, req, ok := h.bindReview(c)
	if !ok {
		return nil
	}
	dto, err := h.uc.Reject(c.Request().Context(), servicing.RejectInput{
		LoanID:     loanID,
		ReviewerID: req.ReviewerID,
		Reason:     req.Reason,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ServicingHandler) AssignLender(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req assignLenderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AssignLender(c.Request().Context(), servicing.AssignLenderInput{
		LoanID:     loanID,
		LenderID:   req.LenderID,
		LenderName: req.LenderName,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ServicingHandler) DisburseLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req disburseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Disburse(c.Request().Context(), servicing.DisburseInput{
		LoanID:   loanID,
		LenderID: req.LenderID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// RecordPayment flips one installment's paid flag; the final installment
// completes the loan.
func (h *ServicingHandler) RecordPayment(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid month path param"})
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, uerr := h.uc.RecordPayment(c.Request().Context(), servicing.RecordPaymentInput{
		LoanID: loanID,
		Month:  month,
		Paid:   req.Paid,
	})
	if uerr != nil {
		return writeDomainError(c, uerr)
	}
	return c.JSON(http.StatusOK, dto)
}

// bindReview handles the shared approve/reject request shape. ok=false
// means the error response has been written already.
func (h *ServicingHandler) bindReview(c echo.Context) (loanID string, req reviewReq, ok bool) {
	loanID = c.Param("loan_id")
	if loanID == "" {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
		return "", req, false
	}
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		return "", req, false
	}
	if err := c.Validate(&req); err != nil {
		_ = c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
		return "", req, false
	}
	return loanID, req, true
}
