// Package fixedpoint holds the integer-only arithmetic used for all monetary
// and ratio math. No floats: division truncates toward zero, never rounds.
package fixedpoint

// BpsDenominator is the basis-point scale (100.00% == 10000 bps).
const BpsDenominator int64 = 10000

// Ratio returns num*scale/den with truncating division.
//
// A zero denominator is not an error: it yields the full scale, i.e. the
// worst-case ratio. Debt against zero income is a 100% debt burden, not a
// division fault. Callers that want a different zero policy must check den
// themselves before calling.
func Ratio(num, den, scale int64) int64 {
	if den == 0 {
		return scale
	}
	return num * scale / den
}

// PercentOf returns amount*pct/100, truncating.
func PercentOf(amount, pct int64) int64 {
	return amount * pct / 100
}

// MonthlyPayment estimates the monthly installment for a loan of principal
// at annualRateBps over months.
//
// Interest is straight-line, not compounding: the annual bps rate is spread
// over twelve months and applied to the full principal for the whole term,
//
//	totalInterest = principal * annualRateBps * months / 120000
//
// and the installment is (principal + totalInterest) / months, truncated.
// months must be > 0; callers validate the term before reaching this point.
func MonthlyPayment(principal, annualRateBps, months int64) int64 {
	totalInterest := principal * annualRateBps * months / (BpsDenominator * 12)
	return (principal + totalInterest) / months
}

// Min returns the smaller of a and b.
func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
