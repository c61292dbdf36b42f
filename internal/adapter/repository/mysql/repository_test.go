package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	ledgerDomain "creditflow-backend/internal/domain/ledger"
	loanDomain "creditflow-backend/internal/domain/loan"
	profileDomain "creditflow-backend/internal/domain/profile"
	"creditflow-backend/internal/domain/scoring"
	"creditflow-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB creates an in-memory sqlite DB with all tables migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&profileDomain.Profile{},
		&loanDomain.Application{},
		&loanDomain.ActiveLoan{},
		&ledgerDomain.Stats{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeProfile(borrowerID string) *profileDomain.Profile {
	return &profileDomain.Profile{
		BorrowerID:   borrowerID,
		CreditScore:  720,
		AnnualIncome: 100000,
		TotalDebt:    20000,
		RiskCategory: scoring.CategoryLow,
		LastUpdated:  time.Now().UTC(),
	}
}

func TestProfileRepository_UpsertReplacesRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()
	bid := id.NewID32()

	if err := repo.Upsert(ctx, makeProfile(bid)); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	updated := makeProfile(bid)
	updated.CreditScore = 580
	updated.RiskCategory = scoring.CategoryHigh
	if err := repo.Upsert(ctx, updated); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.GetByBorrowerID(ctx, bid)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CreditScore != 580 || got.RiskCategory != scoring.CategoryHigh {
		t.Fatalf("row not replaced: %+v", got)
	}

	// still exactly one row
	var count int64
	db.Model(&profileDomain.Profile{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}
}

func TestProfileRepository_GetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewProfileRepository(db)

	_, err := repo.GetByBorrowerID(context.Background(), id.NewID32())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestApplicationRepository_AutoIncrementIDs(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()
	bid := id.NewID32()

	var ids []uint64
	for i := 0; i < 3; i++ {
		a := &loanDomain.Application{
			BorrowerID:      bid,
			Amount:          1000,
			TermMonths:      12,
			RiskScore:       700,
			InterestRateBps: 300,
			Status:          loanDomain.StatusPending,
			AppliedAt:       time.Now().UTC(),
		}
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		ids = append(ids, a.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("ids not increasing: %v", ids)
		}
	}
}

func TestApplicationRepository_SaveAdvancesStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := &loanDomain.Application{
		BorrowerID: id.NewID32(),
		Amount:     5000,
		TermMonths: 24,
		Status:     loanDomain.StatusPending,
		AppliedAt:  time.Now().UTC(),
	}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}

	a.Status = loanDomain.StatusApproved
	a.ApprovedAt = time.Now().UTC()
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != loanDomain.StatusApproved || got.ApprovedAt.IsZero() {
		t.Fatalf("status not persisted: %+v", got)
	}
}

func TestActiveLoanRepository_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewActiveLoanRepository(db)
	ctx := context.Background()

	l := &loanDomain.ActiveLoan{
		ID:                 42,
		BorrowerID:         id.NewID32(),
		PrincipalAmount:    50000,
		OutstandingBalance: 50000,
		InterestRateBps:    300,
		MonthlyPayment:     958,
		TermMonths:         60,
		DisbursedAt:        time.Now().UTC(),
	}
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, 42)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.OutstandingBalance != 50000 || got.MonthlyPayment != 958 {
		t.Fatalf("unexpected row: %+v", got)
	}

	got.OutstandingBalance = 20000
	got.PaymentsMade = 1
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, _ := repo.GetByID(ctx, 42)
	if again.OutstandingBalance != 20000 || again.PaymentsMade != 1 {
		t.Fatalf("payment not persisted: %+v", again)
	}
}

func TestLedgerRepository_LazyInit(t *testing.T) {
	db := openTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	s, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.TotalLoansIssued != 0 || s.TotalAmountDisbursed != 0 || s.ModelVersion != 1 {
		t.Fatalf("fresh stats = %+v", s)
	}

	s.TotalLoansIssued = 1
	s.TotalAmountDisbursed = 50000
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if again.TotalLoansIssued != 1 || again.TotalAmountDisbursed != 50000 {
		t.Fatalf("stats not persisted: %+v", again)
	}

	// still a single row
	var count int64
	db.Model(&ledgerDomain.Stats{}).Count(&count)
	if count != 1 {
		t.Fatalf("rows = %d, want 1", count)
	}
}
