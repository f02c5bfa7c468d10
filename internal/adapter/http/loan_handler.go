package http

import (
	"net/http"

	"loanledger/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID   string  `json:"borrower_id"   validate:"required,hex32"`
	BorrowerName string  `json:"borrower_name" validate:"required,max=128"`
	Principal    float64 `json:"principal"     validate:"required,gt=0,dec2"`
	TermMonths   int     `json:"term_months"   validate:"required,gte=1,lte=360"`
	Purpose      string  `json:"purpose"       validate:"required,max=500"`
}

type quoteReq struct {
	Principal  float64 `json:"principal"   validate:"required,gt=0,dec2"`
	AnnualRate float64 `json:"annual_rate" validate:"required,gt=0,lte=100"`
	TermMonths int     `json:"term_months" validate:"required,gte=1,lte=360"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	dto, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListLoans serves the role-scoped views: ?borrower_id= for a borrower's own
// loans, ?lender_id= for a lender's book, neither for the full collection.
func (h *LoanHandler) ListLoans(c echo.Context) error {
	f := loan.ListFilter{
		BorrowerID: c.QueryParam("borrower_id"),
		LenderID:   c.QueryParam("lender_id"),
	}
	if f.BorrowerID != "" && !reHex32.MatchString(f.BorrowerID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid borrower_id"})
	}
	if f.LenderID != "" && !reHex32.MatchString(f.LenderID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lender_id"})
	}
	dtos, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": dtos})
}

func (h *LoanHandler) PortfolioMetrics(c echo.Context) error {
	f := loan.ListFilter{
		BorrowerID: c.QueryParam("borrower_id"),
		LenderID:   c.QueryParam("lender_id"),
	}
	if f.BorrowerID != "" && !reHex32.MatchString(f.BorrowerID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid borrower_id"})
	}
	if f.LenderID != "" && !reHex32.MatchString(f.LenderID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lender_id"})
	}
	m, err := h.uc.Metrics(c.Request().Context(), f)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *LoanHandler) Quote(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Quote(c.Request().Context(), loan.QuoteInput(req))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
