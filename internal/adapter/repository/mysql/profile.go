package mysql

import (
	"context"

	profileDomain "creditflow-backend/internal/domain/profile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

// Upsert inserts or fully replaces the borrower's row. All columns are
// rewritten on conflict so a stale category can never survive a score
// change.
func (r *ProfileRepository) Upsert(ctx context.Context, p *profileDomain.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "borrower_id"}},
			UpdateAll: true,
		}).
		Create(p).Error
}

func (r *ProfileRepository) GetByBorrowerID(ctx context.Context, borrowerID string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("borrower_id = ?", borrowerID).First(&out)
	return &out, res.Error
}
