package http

import (
	"net/http"

	"creditflow-backend/internal/usecase/scoring"

	"github.com/labstack/echo/v4"
)

type ScoringHandler struct{ uc *scoring.Usecase }

func NewScoringHandler(uc *scoring.Usecase) *ScoringHandler { return &ScoringHandler{uc: uc} }

type assessReq struct {
	BorrowerID string `json:"borrower_id" validate:"required,hex32"`
	Amount     int64  `json:"amount"      validate:"required,gt=0"`
	Purpose    string `json:"purpose"     validate:"max=255"`
}

// Assess runs the comprehensive risk assessment. Open to any authenticated
// caller for any borrower; it reads but never writes, so there is no owner
// gate.
func (h *ScoringHandler) Assess(c echo.Context) error {
	var req assessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	a, err := h.uc.Assess(c.Request().Context(), req.BorrowerID, req.Amount)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, a)
}
