package profile

import "time"

type RegisterInput struct {
	BorrowerID       string `json:"-"`
	CreditScore      int    `json:"credit_score"`
	AnnualIncome     int64  `json:"annual_income"`
	TotalDebt        int64  `json:"total_debt"`
	EmploymentYears  int64  `json:"employment_years"`
	PreviousDefaults int64  `json:"previous_defaults"`
	OnTimePayments   int64  `json:"on_time_payments"`
	TotalLoans       int64  `json:"total_loans"`
}

type ProfileDTO struct {
	BorrowerID       string    `json:"borrower_id"`
	CreditScore      int       `json:"credit_score"`
	AnnualIncome     int64     `json:"annual_income"`
	TotalDebt        int64     `json:"total_debt"`
	EmploymentYears  int64     `json:"employment_years"`
	PreviousDefaults int64     `json:"previous_defaults"`
	OnTimePayments   int64     `json:"on_time_payments"`
	TotalLoans       int64     `json:"total_loans"`
	RiskCategory     string    `json:"risk_category"`
	LastUpdated      time.Time `json:"last_updated"`
}
