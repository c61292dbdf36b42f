package uowmock

import (
	"context"

	"creditflow-backend/internal/domain/loan"
	"creditflow-backend/internal/domain/uow"
)

// UoW runs the transaction body directly against the repos it holds. Good
// enough for usecase tests: atomicity is the database's job, the usecases
// only care that all preconditions are checked before any write.
type UoW struct {
	Repos uow.Repos

	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinApplicationTxFn func(ctx context.Context, id uint64, fn func(r uow.Repos, a *loan.Application) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinApplicationTx(ctx context.Context, id uint64, fn func(r uow.Repos, a *loan.Application) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, id, fn)
	}
	a, err := m.Repos.Applications.GetByIDForUpdate(ctx, id)
	if err != nil {
		return err
	}
	return fn(m.Repos, a)
}
