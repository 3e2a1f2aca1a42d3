package cashflow

import (
	"github.com/google/uuid"
)

// Category represents the direction of a recurring cash movement.
type Category string

const (
	CategoryIncome  Category = "income"
	CategoryExpense Category = "expense"
)

// Frequency represents how often a recurring item repeats.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiweekly    Frequency = "biweekly"
	FrequencySemiMonthly Frequency = "semi_monthly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyAnnually    Frequency = "annually"
)

// Timeframe represents the reporting window amounts are scaled to.
type Timeframe string

const (
	TimeframeDaily    Timeframe = "daily"
	TimeframeWeekly   Timeframe = "weekly"
	TimeframeMonthly  Timeframe = "monthly"
	TimeframeAnnually Timeframe = "annually"
)

// ParseTimeframe maps a raw string onto a timeframe. Anything unrecognized,
// the empty string included, falls back to monthly.
func ParseTimeframe(s string) Timeframe {
	switch tf := Timeframe(s); tf {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeAnnually:
		return tf
	default:
		return TimeframeMonthly
	}
}

// RecurringItem represents a user-declared periodic cash movement, read as
// an immutable snapshot from the ledger service. Amount is a magnitude;
// Category carries the income/expense semantics.
type RecurringItem struct {
	ID         uuid.UUID
	Name       string
	Amount     float64
	Category   Category
	Schedule   Schedule
	IsVariable bool
}

// Frequency returns the recurrence frequency implied by the item's
// schedule. Items without a schedule are treated as monthly.
func (i RecurringItem) Frequency() Frequency {
	if i.Schedule == nil {
		return FrequencyMonthly
	}

	return i.Schedule.Frequency()
}

// MonthlyAmount returns the item's amount normalized to a month.
func (i RecurringItem) MonthlyAmount() float64 {
	return ToMonthly(i.Amount, i.Frequency())
}
