package http

import (
	"errors"
	"net/http"

	domainLoan "creditflow-backend/internal/domain/loan"
	domainProfile "creditflow-backend/internal/domain/profile"

	"github.com/labstack/echo/v4"
)

// respondErr maps domain errors onto HTTP status codes. Everything
// unexpected falls through to a 500 without leaking internals.
func respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domainProfile.ErrNotFound), errors.Is(err, domainLoan.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrAlreadyExists), errors.Is(err, domainLoan.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrInsufficientScore):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainLoan.ErrInvalidAmount),
		errors.Is(err, domainLoan.ErrInvalidTerm),
		errors.Is(err, domainProfile.ErrInvalidParameters):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
