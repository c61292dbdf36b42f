package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"creditflow-backend/internal/adapter/middleware"
	domainProfile "creditflow-backend/internal/domain/profile"
	"creditflow-backend/internal/testutil/profilemock"
	uc "creditflow-backend/internal/usecase/profile"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// -------- helpers --------

var (
	testBorrower = strings.Repeat("b", 32)
	testOwner    = strings.Repeat("0", 32)
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// doAuthed runs a handler behind the Identity middleware with the given
// caller, the way it is mounted in production.
func doAuthed(e *echo.Echo, h echo.HandlerFunc, req *stdhttp.Request, caller string, params ...string) *httptest.ResponseRecorder {
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Ax-Borrower-Id", caller)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	wrapped := middleware.Identity(testOwner)(h)
	if err := wrapped(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

// -------- tests --------

func TestRegisterProfile_Success(t *testing.T) {
	e := newEchoWithValidator()
	repo := &profilemock.Repo{}
	h := NewProfileHandler(uc.NewUsecase(repo))

	body := map[string]any{
		"credit_score":     720,
		"annual_income":    100000,
		"total_debt":       20000,
		"employment_years": 5,
		"on_time_payments": 18,
		"total_loans":      20,
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/profiles", mustJSON(body))
	rec := doAuthed(e, h.RegisterProfile, req, testBorrower)

	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%s)", rec.Code, rec.Body.String())
	}
	var got uc.ProfileDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.BorrowerID != testBorrower {
		t.Fatalf("borrower = %s, want caller identity", got.BorrowerID)
	}
	if got.RiskCategory != "low" {
		t.Fatalf("category = %s, want low", got.RiskCategory)
	}
}

func TestRegisterProfile_ValidationFailure(t *testing.T) {
	e := newEchoWithValidator()
	h := NewProfileHandler(uc.NewUsecase(&profilemock.Repo{}))

	// out-of-range credit score is caught by the validator, not the usecase
	body := map[string]any{"credit_score": 900, "annual_income": 100}
	req := httptest.NewRequest(stdhttp.MethodPost, "/profiles", mustJSON(body))
	rec := doAuthed(e, h.RegisterProfile, req, testBorrower)

	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if len(er.Details) == 0 {
		t.Fatalf("expected field details, got %s", rec.Body.String())
	}
}

func TestRegisterProfile_MissingIdentity(t *testing.T) {
	e := newEchoWithValidator()
	h := NewProfileHandler(uc.NewUsecase(&profilemock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodPost, "/profiles", mustJSON(map[string]any{"credit_score": 700}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	wrapped := middleware.Identity(testOwner)(h.RegisterProfile)
	if err := wrapped(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := NewProfileHandler(uc.NewUsecase(&profilemock.Repo{
		GetByBorrowerIDFn: func(ctx context.Context, borrowerID string) (*domainProfile.Profile, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/profiles/"+testBorrower, nil)
	rec := doAuthed(e, h.GetProfile, req, testBorrower, "borrower_id", testBorrower)
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetProfile_BadParam(t *testing.T) {
	e := newEchoWithValidator()
	h := NewProfileHandler(uc.NewUsecase(&profilemock.Repo{}))

	req := httptest.NewRequest(stdhttp.MethodGet, "/profiles/nope", nil)
	rec := doAuthed(e, h.GetProfile, req, testBorrower, "borrower_id", "nope")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
