package loanmock

import (
	"context"

	domain "creditflow-backend/internal/domain/loan"

	"gorm.io/gorm"
)

// ApplicationRepo is a function-backed mock satisfying
// loan.ApplicationRepository. Unset lookups return gorm.ErrRecordNotFound,
// matching what the real repository yields for a missing row.
type ApplicationRepo struct {
	CreateFn           func(ctx context.Context, a *domain.Application) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Application, error)
	SaveFn             func(ctx context.Context, a *domain.Application) error
}

func (m *ApplicationRepo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *ApplicationRepo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *ApplicationRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *ApplicationRepo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

// ActiveLoanRepo is a function-backed mock satisfying
// loan.ActiveLoanRepository.
type ActiveLoanRepo struct {
	CreateFn           func(ctx context.Context, l *domain.ActiveLoan) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.ActiveLoan, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.ActiveLoan, error)
	SaveFn             func(ctx context.Context, l *domain.ActiveLoan) error
}

func (m *ActiveLoanRepo) Create(ctx context.Context, l *domain.ActiveLoan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *ActiveLoanRepo) GetByID(ctx context.Context, id uint64) (*domain.ActiveLoan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *ActiveLoanRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.ActiveLoan, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *ActiveLoanRepo) Save(ctx context.Context, l *domain.ActiveLoan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
