package profilemock

import (
	"context"

	domain "creditflow-backend/internal/domain/profile"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies profile.Repository.
type Repo struct {
	UpsertFn          func(ctx context.Context, p *domain.Profile) error
	GetByBorrowerIDFn func(ctx context.Context, borrowerID string) (*domain.Profile, error)
}

func (m *Repo) Upsert(ctx context.Context, p *domain.Profile) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByBorrowerID(ctx context.Context, borrowerID string) (*domain.Profile, error) {
	if m.GetByBorrowerIDFn != nil {
		return m.GetByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, gorm.ErrRecordNotFound
}
