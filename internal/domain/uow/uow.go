package uow

import (
	"context"

	"creditflow-backend/internal/domain/ledger"
	"creditflow-backend/internal/domain/loan"
	"creditflow-backend/internal/domain/profile"
)

// Repos bundles all repositories bound to one transaction.
type Repos struct {
	Profiles     profile.Repository
	Applications loan.ApplicationRepository
	Loans        loan.ActiveLoanRepository
	Ledger       ledger.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, id uint64, fn func(r Repos, a *loan.Application) error) error
}
