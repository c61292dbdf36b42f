package ledger

import "time"

// Stats is the process-wide disbursement aggregate: a single row, written
// only when a loan is disbursed. ModelVersion identifies the scoring
// heuristic in effect; it starts at 1 and only changes with a model rollout.
type Stats struct {
	ID                   uint64    `gorm:"primaryKey;column:id" json:"-"`
	TotalLoansIssued     int64     `gorm:"column:total_loans_issued" json:"total_loans_issued"`
	TotalAmountDisbursed int64     `gorm:"column:total_amount_disbursed" json:"total_amount_disbursed"`
	ModelVersion         int64     `gorm:"default:1;column:model_version" json:"model_version"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Stats) TableName() string { return "ledger_stats" }

// SingletonID is the fixed primary key of the one stats row.
const SingletonID uint64 = 1
