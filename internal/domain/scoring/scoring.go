// Package scoring holds the pure risk-scoring rules: the score-band mapping
// shared by profile registration and the comprehensive assessment, and the
// weighted multi-factor composite. Everything here is a pure function of its
// arguments; nothing reads or writes stored records.
package scoring

import (
	"creditflow-backend/pkg/fixedpoint"
)

type Category string

const (
	CategoryLow      Category = "low"
	CategoryMedium   Category = "medium"
	CategoryHigh     Category = "high"
	CategoryVeryHigh Category = "very-high"
)

// Credit scores live in the standard [300,850] range.
const (
	CreditScoreMin = 300
	CreditScoreMax = 850
)

// ApplicationScoreFloor is the minimum stored credit score that may apply for
// a loan. It coincides with the high-risk band's lower bound.
const ApplicationScoreFloor = 500

// Score bands, highest first. Boundaries are inclusive: a score exactly on a
// threshold lands in the more favorable band.
const (
	thresholdLow    = 700
	thresholdMedium = 600
	thresholdHigh   = 500

	RateLowBps      int64 = 300
	RateMediumBps   int64 = 800
	RateHighBps     int64 = 1500
	RateVeryHighBps int64 = 2000
)

// CategoryFor maps a risk score to its band. Used both for the coarse
// category stamped on a profile (raw credit score) and for the category of a
// comprehensive assessment (blended final score); keeping one function here
// is what keeps the two call sites from drifting apart.
func CategoryFor(score int) Category {
	switch {
	case score >= thresholdLow:
		return CategoryLow
	case score >= thresholdMedium:
		return CategoryMedium
	case score >= thresholdHigh:
		return CategoryHigh
	default:
		return CategoryVeryHigh
	}
}

// RateBpsFor maps a risk score to the annual interest rate, in basis points,
// for its band.
func RateBpsFor(score int) int64 {
	switch CategoryFor(score) {
	case CategoryLow:
		return RateLowBps
	case CategoryMedium:
		return RateMediumBps
	case CategoryHigh:
		return RateHighBps
	default:
		return RateVeryHighBps
	}
}

// Sub-score weights, summing to 100.
const (
	weightCredit         = 35
	weightDTI            = 25
	weightPaymentHistory = 20
	weightEmployment     = 10
	weightDefaults       = 10
)

// CreditSubScore rescales [300,850] linearly onto [0,100].
func CreditSubScore(creditScore int) int64 {
	return int64(creditScore-CreditScoreMin) * 100 / (CreditScoreMax - CreditScoreMin)
}

// DTISubScore scores the debt-to-income ratio: 0 at or above a 50% debt
// burden, otherwise 100 minus two points per percent of DTI. Zero income is
// the worst case (DTI = 100%), per fixedpoint.Ratio.
func DTISubScore(totalDebt, annualIncome int64) int64 {
	dti := fixedpoint.Ratio(totalDebt, annualIncome, fixedpoint.BpsDenominator)
	if dti >= 5000 {
		return 0
	}
	return 100 - dti/50
}

// PaymentHistorySubScore is the on-time share of past loans on a 0-100
// scale. A borrower with no loan history scores a neutral 50 — unlike DTI,
// "no history" is not the worst case.
func PaymentHistorySubScore(onTimePayments, totalLoans int64) int64 {
	if totalLoans == 0 {
		return 50
	}
	return fixedpoint.Ratio(onTimePayments, totalLoans, 100)
}

// EmploymentSubScore awards ten points per year of employment, saturating at
// ten years.
func EmploymentSubScore(employmentYears int64) int64 {
	return fixedpoint.Min(employmentYears*10, 100)
}

// DefaultSubScore penalizes prior defaults in three steps.
func DefaultSubScore(previousDefaults int64) int64 {
	switch {
	case previousDefaults == 0:
		return 100
	case previousDefaults <= 2:
		return 50
	default:
		return 0
	}
}

// Inputs is the borrower data the comprehensive assessment reads. It is a
// plain value so the assessment stays a pure function of its arguments.
type Inputs struct {
	CreditScore      int
	AnnualIncome     int64
	TotalDebt        int64
	EmploymentYears  int64
	PreviousDefaults int64
	OnTimePayments   int64
	TotalLoans       int64
}

// Assessment is the full multi-factor evaluation for one borrower and one
// candidate amount.
type Assessment struct {
	CreditSubScore         int64    `json:"credit_sub_score"`
	DTISubScore            int64    `json:"dti_sub_score"`
	PaymentHistorySubScore int64    `json:"payment_history_sub_score"`
	EmploymentSubScore     int64    `json:"employment_sub_score"`
	DefaultSubScore        int64    `json:"default_sub_score"`
	Composite              int64    `json:"composite"`
	FinalRiskScore         int      `json:"final_risk_score"`
	Category               Category `json:"category"`
	RecommendedRateBps     int64    `json:"recommended_rate_bps"`
	MaxRecommendedAmount   int64    `json:"max_recommended_amount"`
	ApprovalRecommended    bool     `json:"approval_recommended"`
}

// Assess computes the comprehensive risk assessment: five weighted
// sub-scores blended into a 0-100 composite, a 5% discount when the
// requested amount exceeds half the annual income, and a remap into the
// 500-850 score range that feeds the band mapping.
//
// Zero income takes the same worst-case convention in the loan-to-income
// check as in DTI: LTI saturates at the full scale, so the discount always
// applies.
func Assess(in Inputs, requestedAmount int64) Assessment {
	a := Assessment{
		CreditSubScore:         CreditSubScore(in.CreditScore),
		DTISubScore:            DTISubScore(in.TotalDebt, in.AnnualIncome),
		PaymentHistorySubScore: PaymentHistorySubScore(in.OnTimePayments, in.TotalLoans),
		EmploymentSubScore:     EmploymentSubScore(in.EmploymentYears),
		DefaultSubScore:        DefaultSubScore(in.PreviousDefaults),
	}

	composite := (a.CreditSubScore*weightCredit +
		a.DTISubScore*weightDTI +
		a.PaymentHistorySubScore*weightPaymentHistory +
		a.EmploymentSubScore*weightEmployment +
		a.DefaultSubScore*weightDefaults) / 100

	lti := fixedpoint.Ratio(requestedAmount, in.AnnualIncome, 100)
	if lti > 50 {
		composite = composite * 950 / 1000
	}
	a.Composite = composite

	a.FinalRiskScore = 500 + int(composite*350/100)
	a.Category = CategoryFor(a.FinalRiskScore)
	a.RecommendedRateBps = RateBpsFor(a.FinalRiskScore)
	a.MaxRecommendedAmount = fixedpoint.PercentOf(in.AnnualIncome, 40)
	a.ApprovalRecommended = a.FinalRiskScore >= 500
	return a
}
