package scoring

import (
	"reflect"
	"testing"
)

func TestCategoryFor_Boundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Category
	}{
		{850, CategoryLow},
		{700, CategoryLow},
		{699, CategoryMedium},
		{600, CategoryMedium},
		{599, CategoryHigh},
		{500, CategoryHigh},
		{499, CategoryVeryHigh},
		{300, CategoryVeryHigh},
	}
	for _, c := range cases {
		if got := CategoryFor(c.score); got != c.want {
			t.Fatalf("CategoryFor(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestRateBpsFor_Bands(t *testing.T) {
	cases := []struct {
		score int
		want  int64
	}{
		{720, 300},
		{700, 300},
		{699, 800},
		{600, 800},
		{599, 1500},
		{500, 1500},
		{499, 2000},
	}
	for _, c := range cases {
		if got := RateBpsFor(c.score); got != c.want {
			t.Fatalf("RateBpsFor(%d) = %d, want %d", c.score, got, c.want)
		}
	}
}

func TestCreditSubScore_Rescale(t *testing.T) {
	if got := CreditSubScore(300); got != 0 {
		t.Fatalf("CreditSubScore(300) = %d, want 0", got)
	}
	if got := CreditSubScore(850); got != 100 {
		t.Fatalf("CreditSubScore(850) = %d, want 100", got)
	}
	// (720-300)*100/550 = 76 (truncated)
	if got := CreditSubScore(720); got != 76 {
		t.Fatalf("CreditSubScore(720) = %d, want 76", got)
	}
}

func TestDTISubScore(t *testing.T) {
	// 20% DTI → 2000 bps → 100 - 40 = 60
	if got := DTISubScore(20000, 100000); got != 60 {
		t.Fatalf("DTISubScore(20k,100k) = %d, want 60", got)
	}
	// 50% DTI hits the hard zero
	if got := DTISubScore(50000, 100000); got != 0 {
		t.Fatalf("DTISubScore at 50%% = %d, want 0", got)
	}
	// zero income is worst case, not a fault
	if got := DTISubScore(1, 0); got != 0 {
		t.Fatalf("DTISubScore zero income = %d, want 0", got)
	}
	if got := DTISubScore(0, 0); got != 0 {
		t.Fatalf("DTISubScore zero debt, zero income = %d, want 0", got)
	}
}

func TestDTISubScore_MonotoneInIncome(t *testing.T) {
	const debt = 30000
	prev := DTISubScore(debt, 0)
	for _, income := range []int64{10000, 40000, 60000, 100000, 1000000} {
		got := DTISubScore(debt, income)
		if got < prev {
			t.Fatalf("DTISubScore decreased from %d to %d at income %d", prev, got, income)
		}
		prev = got
	}
}

func TestPaymentHistorySubScore(t *testing.T) {
	// no history is neutral regardless of on-time count
	if got := PaymentHistorySubScore(0, 0); got != 50 {
		t.Fatalf("no-history score = %d, want 50", got)
	}
	if got := PaymentHistorySubScore(7, 0); got != 50 {
		t.Fatalf("no-history score with onTime set = %d, want 50", got)
	}
	if got := PaymentHistorySubScore(18, 20); got != 90 {
		t.Fatalf("18/20 score = %d, want 90", got)
	}
	if got := PaymentHistorySubScore(1, 3); got != 33 {
		t.Fatalf("1/3 score = %d, want 33", got)
	}
}

func TestEmploymentSubScore_Saturates(t *testing.T) {
	if got := EmploymentSubScore(0); got != 0 {
		t.Fatalf("0y = %d, want 0", got)
	}
	if got := EmploymentSubScore(5); got != 50 {
		t.Fatalf("5y = %d, want 50", got)
	}
	if got := EmploymentSubScore(10); got != 100 {
		t.Fatalf("10y = %d, want 100", got)
	}
	if got := EmploymentSubScore(40); got != 100 {
		t.Fatalf("40y = %d, want 100", got)
	}
}

func TestDefaultSubScore_Monotone(t *testing.T) {
	steps := []struct {
		defaults int64
		want     int64
	}{{0, 100}, {1, 50}, {2, 50}, {3, 0}, {10, 0}}
	prev := int64(100)
	for _, s := range steps {
		got := DefaultSubScore(s.defaults)
		if got != s.want {
			t.Fatalf("DefaultSubScore(%d) = %d, want %d", s.defaults, got, s.want)
		}
		if got > prev {
			t.Fatalf("DefaultSubScore not non-increasing at %d", s.defaults)
		}
		prev = got
	}
}

func TestAssess_ReferenceBorrower(t *testing.T) {
	in := Inputs{
		CreditScore:      720,
		AnnualIncome:     100000,
		TotalDebt:        20000,
		EmploymentYears:  5,
		PreviousDefaults: 0,
		OnTimePayments:   18,
		TotalLoans:       20,
	}
	a := Assess(in, 50000)

	// (76*35 + 60*25 + 90*20 + 50*10 + 100*10)/100 = 74, LTI exactly 50 → no discount
	if a.Composite != 74 {
		t.Fatalf("composite = %d, want 74", a.Composite)
	}
	if a.FinalRiskScore != 759 {
		t.Fatalf("final score = %d, want 759", a.FinalRiskScore)
	}
	if a.Category != CategoryLow || a.RecommendedRateBps != 300 {
		t.Fatalf("category/rate = %s/%d, want low/300", a.Category, a.RecommendedRateBps)
	}
	if a.MaxRecommendedAmount != 40000 {
		t.Fatalf("max recommended = %d, want 40000", a.MaxRecommendedAmount)
	}
	if !a.ApprovalRecommended {
		t.Fatal("expected approval recommendation")
	}
}

func TestAssess_LTIDiscount(t *testing.T) {
	in := Inputs{
		CreditScore:      720,
		AnnualIncome:     100000,
		TotalDebt:        20000,
		EmploymentYears:  5,
		PreviousDefaults: 0,
		OnTimePayments:   18,
		TotalLoans:       20,
	}
	// 50001 > 50% of income → composite 74*950/1000 = 70
	a := Assess(in, 50001)
	if a.Composite != 70 {
		t.Fatalf("discounted composite = %d, want 70", a.Composite)
	}
	if a.FinalRiskScore != 745 {
		t.Fatalf("discounted final score = %d, want 745", a.FinalRiskScore)
	}
}

func TestAssess_ZeroIncomeAlwaysDiscounts(t *testing.T) {
	in := Inputs{CreditScore: 850, AnnualIncome: 0, EmploymentYears: 10}
	// LTI saturates at the full scale for zero income, so any positive
	// request takes the discount.
	withDiscount := Assess(in, 1)
	// undiscounted composite = (100*35 + 0*25 + 50*20 + 100*10 + 100*10)/100 = 65,
	// discounted 65*950/1000 = 61
	if got := withDiscount.Composite; got != 61 {
		t.Fatalf("zero-income composite = %d, want 61", got)
	}
	if withDiscount.MaxRecommendedAmount != 0 {
		t.Fatalf("max recommended = %d, want 0", withDiscount.MaxRecommendedAmount)
	}
}

func TestAssess_Idempotent(t *testing.T) {
	in := Inputs{
		CreditScore:      640,
		AnnualIncome:     55000,
		TotalDebt:        31000,
		EmploymentYears:  3,
		PreviousDefaults: 1,
		OnTimePayments:   4,
		TotalLoans:       6,
	}
	first := Assess(in, 20000)
	second := Assess(in, 20000)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Assess not idempotent: %+v vs %+v", first, second)
	}
}

func TestAssess_FloorNeverBelow500(t *testing.T) {
	// the worst possible borrower still lands at the remap floor
	a := Assess(Inputs{CreditScore: 300, AnnualIncome: 0, TotalDebt: 1, PreviousDefaults: 5}, 100)
	if a.FinalRiskScore < 500 {
		t.Fatalf("final score = %d, below remap floor", a.FinalRiskScore)
	}
	if !a.ApprovalRecommended {
		// remap floor is 500 and the recommendation threshold is >= 500
		t.Fatal("floor score should still carry a positive recommendation")
	}
}
