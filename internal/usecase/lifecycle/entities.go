package lifecycle

import "time"

type ApplyInput struct {
	BorrowerID string `json:"-"`
	Amount     int64  `json:"amount"`
	Purpose    string `json:"purpose"`
	TermMonths int64  `json:"term_months"`
}

type ApplicationDTO struct {
	ID              uint64     `json:"id"`
	BorrowerID      string     `json:"borrower_id"`
	Amount          int64      `json:"amount"`
	Purpose         string     `json:"purpose"`
	TermMonths      int64      `json:"term_months"`
	RiskScore       int        `json:"risk_score"`
	InterestRateBps int64      `json:"interest_rate_bps"`
	Status          string     `json:"status"`
	AppliedAt       time.Time  `json:"applied_at"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
}

type ActiveLoanDTO struct {
	ID                 uint64    `json:"id"`
	BorrowerID         string    `json:"borrower_id"`
	PrincipalAmount    int64     `json:"principal_amount"`
	OutstandingBalance int64     `json:"outstanding_balance"`
	InterestRateBps    int64     `json:"interest_rate_bps"`
	MonthlyPayment     int64     `json:"monthly_payment"`
	PaymentsMade       int64     `json:"payments_made"`
	PaymentsMissed     int64     `json:"payments_missed"`
	TermMonths         int64     `json:"term_months"`
	DisbursedAt        time.Time `json:"disbursed_at"`
}

type PaymentDTO struct {
	LoanID             uint64 `json:"loan_id"`
	OutstandingBalance int64  `json:"outstanding_balance"`
	PaymentsMade       int64  `json:"payments_made"`
}

type StatsDTO struct {
	TotalLoansIssued     int64 `json:"total_loans_issued"`
	TotalAmountDisbursed int64 `json:"total_amount_disbursed"`
	ModelVersion         int64 `json:"model_version"`
}
