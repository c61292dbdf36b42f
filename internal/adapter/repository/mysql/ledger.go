package mysql

import (
	"context"
	"errors"

	ledgerDomain "creditflow-backend/internal/domain/ledger"

	"gorm.io/gorm"
)

type LedgerRepository struct{ db *gorm.DB }

func NewLedgerRepository(db *gorm.DB) *LedgerRepository { return &LedgerRepository{db: db} }

// Get returns the singleton stats row, creating the zeroed row (model
// version 1) on first access.
func (r *LedgerRepository) Get(ctx context.Context) (*ledgerDomain.Stats, error) {
	return r.get(ctx, false)
}

// GetForUpdate locks the stats row; call inside a transaction.
func (r *LedgerRepository) GetForUpdate(ctx context.Context) (*ledgerDomain.Stats, error) {
	return r.get(ctx, true)
}

func (r *LedgerRepository) get(ctx context.Context, lock bool) (*ledgerDomain.Stats, error) {
	q := r.db.WithContext(ctx)
	if lock {
		q = forUpdate(q)
	}
	var out ledgerDomain.Stats
	err := q.Where("id = ?", ledgerDomain.SingletonID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		out = ledgerDomain.Stats{ID: ledgerDomain.SingletonID, ModelVersion: 1}
		if err := r.db.WithContext(ctx).Create(&out).Error; err != nil {
			return nil, err
		}
		return &out, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *LedgerRepository) Save(ctx context.Context, s *ledgerDomain.Stats) error {
	return r.db.WithContext(ctx).Save(s).Error
}
