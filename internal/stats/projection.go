package stats

import (
	"time"

	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/debt"
)

// Event is a single cash movement on a projected day. Amount is signed:
// income positive, expenses and debt payments negative.
type Event struct {
	Name     string
	Amount   float64
	Category cashflow.Category
	Debt     bool
}

// Day is one day of the running-balance projection.
type Day struct {
	Date    time.Time
	Balance float64
	Events  []Event
	IsToday bool
}

// Project walks day by day from the first of the month containing start,
// firing recurring items on the days their schedules trigger and debt
// obligations monthly on their due day (clamped to month end). The running
// balance is seeded with liquidCash on the start day; earlier days in the
// window are back-filled by undoing later events. months is clamped to
// 1..12.
func Project(items []cashflow.RecurringItem, obligations []debt.Obligation, liquidCash float64, start time.Time, months int) []Day {
	if months < 1 {
		months = 1
	}

	if months > 12 {
		months = 12
	}

	today := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	first := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	total := int(first.AddDate(0, months, 0).Sub(first).Hours() / 24)

	days := make([]Day, total)
	for i := range days {
		d := first.AddDate(0, 0, i)
		days[i] = Day{Date: d, IsToday: d.Equal(today), Events: dayEvents(items, obligations, d, first)}
	}

	todayIdx := int(today.Sub(first).Hours() / 24)

	// Forward pass from today, then backward to the start of the window.
	balance := liquidCash
	days[todayIdx].Balance = balance

	for i := todayIdx + 1; i < total; i++ {
		balance += dayDelta(days[i].Events)
		days[i].Balance = balance
	}

	balance = liquidCash
	for i := todayIdx - 1; i >= 0; i-- {
		balance -= dayDelta(days[i+1].Events)
		days[i].Balance = balance
	}

	return days
}

func dayEvents(items []cashflow.RecurringItem, obligations []debt.Obligation, d, anchor time.Time) []Event {
	var events []Event

	for _, item := range items {
		sched := item.Schedule
		if sched == nil {
			sched = cashflow.Monthly{Day: 1}
		}

		if !sched.OccursOn(d, anchor) {
			continue
		}

		amount := item.Amount
		if item.Category == cashflow.CategoryExpense {
			amount = -amount
		}

		events = append(events, Event{Name: item.Name, Amount: amount, Category: item.Category})
	}

	// Paid-off accounts carry a zero minimum and contribute no events.
	// Missing due days are defaulted when the ledger snapshot is mapped,
	// not here; an obligation without one never fires.
	for _, ob := range obligations {
		if ob.Amount == 0 || ob.DueDay == 0 {
			continue
		}

		if d.Day() != min(ob.DueDay, cashflow.DaysInMonth(d)) {
			continue
		}

		events = append(events, Event{
			Name:     ob.Name,
			Amount:   -ob.Amount,
			Category: cashflow.CategoryExpense,
			Debt:     true,
		})
	}

	return events
}

func dayDelta(events []Event) float64 {
	var delta float64
	for _, ev := range events {
		delta += ev.Amount
	}

	return delta
}
