package profile

import (
	"errors"
	"time"

	"creditflow-backend/internal/domain/scoring"
)

var (
	ErrNotFound          = errors.New("borrower profile not found")
	ErrInvalidParameters = errors.New("invalid profile parameters")
)

// Profile is one borrower's financial profile. One row per borrower,
// upsertable; only the borrower's own identity writes it. RiskCategory is
// derived from CreditScore on every write, never stored independently.
type Profile struct {
	BorrowerID       string           `gorm:"primaryKey;size:32;column:borrower_id" json:"borrower_id"`
	CreditScore      int              `gorm:"column:credit_score" json:"credit_score"`
	AnnualIncome     int64            `gorm:"column:annual_income" json:"annual_income"`
	TotalDebt        int64            `gorm:"column:total_debt" json:"total_debt"`
	EmploymentYears  int64            `gorm:"column:employment_years" json:"employment_years"`
	PreviousDefaults int64            `gorm:"column:previous_defaults" json:"previous_defaults"`
	OnTimePayments   int64            `gorm:"column:on_time_payments" json:"on_time_payments"`
	TotalLoans       int64            `gorm:"column:total_loans" json:"total_loans"`
	RiskCategory     scoring.Category `gorm:"size:16;column:risk_category" json:"risk_category"`
	LastUpdated      time.Time        `gorm:"column:last_updated" json:"last_updated"`
	CreatedAt        time.Time        `gorm:"autoCreateTime" json:"-"`
	UpdatedAt        time.Time        `gorm:"autoUpdateTime" json:"-"`
}

func (Profile) TableName() string { return "borrower_profiles" }

// ScoringInputs projects the profile into the value the scoring engine
// consumes.
func (p *Profile) ScoringInputs() scoring.Inputs {
	return scoring.Inputs{
		CreditScore:      p.CreditScore,
		AnnualIncome:     p.AnnualIncome,
		TotalDebt:        p.TotalDebt,
		EmploymentYears:  p.EmploymentYears,
		PreviousDefaults: p.PreviousDefaults,
		OnTimePayments:   p.OnTimePayments,
		TotalLoans:       p.TotalLoans,
	}
}
