package http

import (
	"net/http"

	"creditflow-backend/internal/adapter/middleware"
	"creditflow-backend/internal/usecase/profile"
	"creditflow-backend/pkg/id"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct{ uc *profile.Usecase }

func NewProfileHandler(uc *profile.Usecase) *ProfileHandler { return &ProfileHandler{uc: uc} }

type registerProfileReq struct {
	CreditScore      int   `json:"credit_score"      validate:"required,gte=300,lte=850"`
	AnnualIncome     int64 `json:"annual_income"     validate:"gte=0"`
	TotalDebt        int64 `json:"total_debt"        validate:"gte=0"`
	EmploymentYears  int64 `json:"employment_years"  validate:"gte=0"`
	PreviousDefaults int64 `json:"previous_defaults" validate:"gte=0"`
	OnTimePayments   int64 `json:"on_time_payments"  validate:"gte=0"`
	TotalLoans       int64 `json:"total_loans"       validate:"gte=0"`
}

// RegisterProfile upserts the caller's own profile; the borrower identity
// comes from the auth middleware, never from the body.
func (h *ProfileHandler) RegisterProfile(c echo.Context) error {
	var req registerProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Register(c.Request().Context(), profile.RegisterInput{
		BorrowerID:       middleware.BorrowerID(c),
		CreditScore:      req.CreditScore,
		AnnualIncome:     req.AnnualIncome,
		TotalDebt:        req.TotalDebt,
		EmploymentYears:  req.EmploymentYears,
		PreviousDefaults: req.PreviousDefaults,
		OnTimePayments:   req.OnTimePayments,
		TotalLoans:       req.TotalLoans,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	borrowerID := c.Param("borrower_id")
	if !id.Valid(borrowerID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid borrower_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), borrowerID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
