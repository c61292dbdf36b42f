package profile

import (
	"context"
	"errors"
	"time"

	domain "creditflow-backend/internal/domain/profile"
	"creditflow-backend/internal/domain/scoring"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// Register upserts the caller's financial profile. The coarse risk category
// is recomputed from the raw credit score on every write, so the stored
// category can never drift from the stored score.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*ProfileDTO, error) {
	if len(in.BorrowerID) != 32 {
		return nil, domain.ErrInvalidParameters
	}
	if in.CreditScore < scoring.CreditScoreMin || in.CreditScore > scoring.CreditScoreMax {
		return nil, domain.ErrInvalidParameters
	}
	if in.AnnualIncome < 0 || in.TotalDebt < 0 || in.EmploymentYears < 0 ||
		in.PreviousDefaults < 0 || in.OnTimePayments < 0 || in.TotalLoans < 0 {
		return nil, domain.ErrInvalidParameters
	}

	p := &domain.Profile{
		BorrowerID:       in.BorrowerID,
		CreditScore:      in.CreditScore,
		AnnualIncome:     in.AnnualIncome,
		TotalDebt:        in.TotalDebt,
		EmploymentYears:  in.EmploymentYears,
		PreviousDefaults: in.PreviousDefaults,
		OnTimePayments:   in.OnTimePayments,
		TotalLoans:       in.TotalLoans,
		RiskCategory:     scoring.CategoryFor(in.CreditScore),
		LastUpdated:      time.Now().UTC(),
	}
	if err := u.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID string) (*ProfileDTO, error) {
	p, err := u.repo.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(p), nil
}

func toDTO(p *domain.Profile) *ProfileDTO {
	return &ProfileDTO{
		BorrowerID:       p.BorrowerID,
		CreditScore:      p.CreditScore,
		AnnualIncome:     p.AnnualIncome,
		TotalDebt:        p.TotalDebt,
		EmploymentYears:  p.EmploymentYears,
		PreviousDefaults: p.PreviousDefaults,
		OnTimePayments:   p.OnTimePayments,
		TotalLoans:       p.TotalLoans,
		RiskCategory:     string(p.RiskCategory),
		LastUpdated:      p.LastUpdated,
	}
}
