package loan

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusDisbursed Status = "disbursed"
)

// Term bounds in months.
const (
	MinTermMonths = 6
	MaxTermMonths = 360
)

// Application is a loan application. The id is the process-wide monotonic
// counter (auto-increment PK); it advances only when an application is
// actually inserted, so rejected attempts never burn an id. RiskScore and
// InterestRateBps are snapshots taken at application time and never
// recomputed afterwards.
type Application struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	BorrowerID      string    `gorm:"size:32;index:idx_applications_borrower;column:borrower_id" json:"borrower_id"`
	Amount          int64     `gorm:"column:amount" json:"amount"`
	Purpose         string    `gorm:"size:255;column:purpose" json:"purpose"`
	TermMonths      int64     `gorm:"column:term_months" json:"term_months"`
	RiskScore       int       `gorm:"column:risk_score" json:"risk_score"`
	InterestRateBps int64     `gorm:"column:interest_rate_bps" json:"interest_rate_bps"`
	Status          Status    `gorm:"size:16;default:'pending';column:status" json:"status"`
	AppliedAt       time.Time `gorm:"column:applied_at" json:"applied_at"`
	ApprovedAt      time.Time `gorm:"column:approved_at" json:"approved_at"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }

// ActiveLoan is the disbursed side of an application. It shares the
// application's id as an audit back-reference, not an ownership link: the
// application row stays behind after disbursement and both can be read
// independently. Principal, rate and monthly payment are immutable after
// disbursement; only the balance and payment counters move.
type ActiveLoan struct {
	ID                 uint64    `gorm:"primaryKey;column:id" json:"id"`
	BorrowerID         string    `gorm:"size:32;index:idx_active_loans_borrower;column:borrower_id" json:"borrower_id"`
	PrincipalAmount    int64     `gorm:"column:principal_amount" json:"principal_amount"`
	OutstandingBalance int64     `gorm:"column:outstanding_balance" json:"outstanding_balance"`
	InterestRateBps    int64     `gorm:"column:interest_rate_bps" json:"interest_rate_bps"`
	MonthlyPayment     int64     `gorm:"column:monthly_payment" json:"monthly_payment"`
	PaymentsMade       int64     `gorm:"column:payments_made" json:"payments_made"`
	PaymentsMissed     int64     `gorm:"column:payments_missed" json:"payments_missed"`
	TermMonths         int64     `gorm:"column:term_months" json:"term_months"`
	DisbursedAt        time.Time `gorm:"column:disbursed_at" json:"disbursed_at"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (ActiveLoan) TableName() string { return "active_loans" }
