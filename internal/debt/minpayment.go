package debt

import "math"

// EstimateMinimumPayment computes a minimum payment for accounts whose
// snapshot does not carry one.
//
// Revolving credit uses the issuer convention of max($25, 1% of balance
// plus one month of interest). Installment debt uses the amortization
// formula P*r(1+r)^n / ((1+r)^n - 1) over the remaining term, with a
// straight division when the APR is zero, and falls back to the revolving
// formula when the term is unknown. The result never exceeds the balance.
func EstimateMinimumPayment(balance, aprPct float64, subtype Subtype, remainingMonths int) float64 {
	if balance <= 0 {
		return 0
	}

	monthlyRate := aprPct / 100 / 12

	if !subtype.Revolving() && remainingMonths > 0 {
		if monthlyRate == 0 {
			return math.Min(balance/float64(remainingMonths), balance)
		}

		factor := math.Pow(1+monthlyRate, float64(remainingMonths))
		payment := balance * monthlyRate * factor / (factor - 1)

		return math.Min(payment, balance)
	}

	payment := math.Max(25, balance*0.01+balance*monthlyRate)

	return math.Min(payment, balance)
}
