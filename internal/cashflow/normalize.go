package cashflow

import "math"

// ToMonthly converts an amount on the given frequency to its canonical
// monthly equivalent using calendar averages: 52.14 weeks and 26.07
// fortnights per year divided by 12. Unknown frequencies fall back to the
// identity factor and non-finite amounts are coerced to zero, so the
// conversion is total. The sign of amount is preserved; income/expense
// semantics belong to the caller.
func ToMonthly(amount float64, freq Frequency) float64 {
	amount = sanitize(amount)

	switch freq {
	case FrequencyWeekly:
		return amount * 4.345
	case FrequencyBiweekly:
		return amount * 2.17
	case FrequencySemiMonthly:
		return amount * 2
	case FrequencyAnnually:
		return amount / 12
	default:
		return amount
	}
}

// ToTimeframe scales a canonical monthly amount to the requested reporting
// timeframe. The monthly timeframe is the identity.
func ToTimeframe(monthly float64, tf Timeframe) float64 {
	monthly = sanitize(monthly)

	switch tf {
	case TimeframeDaily:
		return monthly / 30.44
	case TimeframeWeekly:
		return monthly / 4.345
	case TimeframeAnnually:
		return monthly * 12
	default:
		return monthly
	}
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}
