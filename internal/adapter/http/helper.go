package http

import (
	"errors"
	"net/http"
	"strings"

	domain "loanledger/internal/domain/loan"

	"github.com/labstack/echo/v4"
)

// writeDomainError maps lifecycle/domain errors to HTTP codes.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	case errors.Is(err, domain.ErrRepaymentNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "repayment month not found"})
	case errors.Is(err, domain.ErrTerminalStatus),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrLenderRequired),
		errors.Is(err, domain.ErrLenderAlreadyAssigned):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
