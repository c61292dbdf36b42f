package mysql

import (
	"context"

	loanDomain "creditflow-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

// GetByIDForUpdate takes a row lock; call inside a transaction.
func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := forUpdate(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

type ActiveLoanRepository struct{ db *gorm.DB }

func NewActiveLoanRepository(db *gorm.DB) *ActiveLoanRepository {
	return &ActiveLoanRepository{db: db}
}

func (r *ActiveLoanRepository) Create(ctx context.Context, l *loanDomain.ActiveLoan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *ActiveLoanRepository) Save(ctx context.Context, l *loanDomain.ActiveLoan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *ActiveLoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.ActiveLoan, error) {
	var out loanDomain.ActiveLoan
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ActiveLoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.ActiveLoan, error) {
	var out loanDomain.ActiveLoan
	res := forUpdate(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}
