package debt

import (
	"math"
	"time"

	"github.com/mrodal/paydown/internal/cashflow"
)

// Band labels a revolving account's balance-to-limit ratio.
type Band string

const (
	BandExcellent Band = "Excellent"
	BandModerate  Band = "Moderate"
	BandHigh      Band = "High"
	BandCritical  Band = "Critical"
)

// Utilization is the classified balance-to-limit ratio of a revolving
// account.
type Utilization struct {
	Pct  int
	Band Band
}

// ClassifyUtilization buckets a revolving balance against its credit
// limit. The percentage is capped at 100 and rounded to the nearest whole
// point. Callers must only invoke this for revolving accounts with a
// positive credit limit.
func ClassifyUtilization(balance, creditLimit float64) Utilization {
	pct := int(math.Round(math.Min(100, balance/creditLimit*100)))

	u := Utilization{Pct: pct}

	switch {
	case pct <= 30:
		u.Band = BandExcellent
	case pct <= 50:
		u.Band = BandModerate
	case pct <= 70:
		u.Band = BandHigh
	default:
		u.Band = BandCritical
	}

	return u
}

// Grace describes where today falls relative to a revolving account's due
// day.
type Grace struct {
	DaysLeft int
	InGrace  bool
}

// GraceWindowDays is the longest stretch before a due date that still
// counts as the billing grace window.
const GraceWindowDays = 25

// ClassifyGracePeriod computes whole days until the next due day, rolling
// into the next month using the real calendar so 28- and 31-day months
// both come out right. Callers must only invoke this for revolving
// accounts with a due day set.
func ClassifyGracePeriod(dueDay int, today time.Time) Grace {
	var daysLeft int
	if dueDay >= today.Day() {
		daysLeft = dueDay - today.Day()
	} else {
		daysLeft = cashflow.DaysInMonth(today) - today.Day() + dueDay
	}

	return Grace{
		DaysLeft: daysLeft,
		InGrace:  daysLeft > 0 && daysLeft <= GraceWindowDays,
	}
}
