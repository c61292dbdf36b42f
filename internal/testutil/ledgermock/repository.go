package ledgermock

import (
	"context"

	domain "creditflow-backend/internal/domain/ledger"
)

// Repo is a function-backed mock satisfying ledger.Repository. Without
// overrides it behaves like a fresh in-memory singleton row.
type Repo struct {
	Stats          domain.Stats
	GetFn          func(ctx context.Context) (*domain.Stats, error)
	GetForUpdateFn func(ctx context.Context) (*domain.Stats, error)
	SaveFn         func(ctx context.Context, s *domain.Stats) error
}

func (m *Repo) Get(ctx context.Context) (*domain.Stats, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	s := m.Stats
	if s.ModelVersion == 0 {
		s.ModelVersion = 1
	}
	return &s, nil
}

func (m *Repo) GetForUpdate(ctx context.Context) (*domain.Stats, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx)
	}
	return m.Get(ctx)
}

func (m *Repo) Save(ctx context.Context, s *domain.Stats) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	m.Stats = *s
	return nil
}
