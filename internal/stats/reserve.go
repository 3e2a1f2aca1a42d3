package stats

import "math"

// ReserveMonths is how many months of expenses the emergency reserve
// recommendation covers.
const ReserveMonths = 3

// RecommendedReserve returns the emergency reserve target implied by the
// summary's raw monthly expenses.
func RecommendedReserve(s Summary) float64 {
	return s.MonthlyExpensesRaw * ReserveMonths
}

// ReserveStatus describes how full the emergency reserve is.
type ReserveStatus struct {
	Target  float64
	Funded  float64
	FillPct float64
	Deficit float64
	Met     bool
}

// EvaluateReserve compares liquid cash against a reserve target. A zero or
// negative target is trivially met.
func EvaluateReserve(liquidCash, target float64) ReserveStatus {
	if target <= 0 {
		return ReserveStatus{Met: true, FillPct: 100}
	}

	funded := math.Min(liquidCash, target)

	return ReserveStatus{
		Target:  target,
		Funded:  funded,
		FillPct: funded / target * 100,
		Deficit: math.Max(0, target-liquidCash),
		Met:     liquidCash >= target,
	}
}
