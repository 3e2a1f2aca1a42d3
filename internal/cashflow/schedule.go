package cashflow

import "time"

// Schedule describes when a recurring item fires. Each frequency has its
// own schedule type carrying only the fields that frequency needs, so an
// annual item cannot accidentally hold a weekday and a weekly item cannot
// hold a day of month.
type Schedule interface {
	Frequency() Frequency

	// OccursOn reports whether the schedule fires on the given calendar
	// day. anchor is the first day of the evaluation window and is only
	// consulted by biweekly schedules to fix week parity.
	OccursOn(day, anchor time.Time) bool
}

// Weekly fires once a week on the given weekday.
type Weekly struct {
	Weekday time.Weekday
}

func (s Weekly) Frequency() Frequency { return FrequencyWeekly }

func (s Weekly) OccursOn(day, _ time.Time) bool {
	return day.Weekday() == s.Weekday
}

// Biweekly fires every other week on the given weekday, with week parity
// anchored to the start of the evaluation window.
type Biweekly struct {
	Weekday time.Weekday
}

func (s Biweekly) Frequency() Frequency { return FrequencyBiweekly }

func (s Biweekly) OccursOn(day, anchor time.Time) bool {
	if day.Weekday() != s.Weekday {
		return false
	}

	return (daysBetween(anchor, day)/7)%2 == 0
}

// SemiMonthly fires twice a month, on FirstPayDay (1-15) and SecondPayDay
// (16-31). Days past the end of a short month fire on its last day.
type SemiMonthly struct {
	FirstPayDay  int
	SecondPayDay int
}

func (s SemiMonthly) Frequency() Frequency { return FrequencySemiMonthly }

func (s SemiMonthly) OccursOn(day, _ time.Time) bool {
	last := DaysInMonth(day)

	return day.Day() == min(s.FirstPayDay, last) || day.Day() == min(s.SecondPayDay, last)
}

// Monthly fires once a month on the given day, clamped to the last day of
// short months.
type Monthly struct {
	Day int
}

func (s Monthly) Frequency() Frequency { return FrequencyMonthly }

func (s Monthly) OccursOn(day, _ time.Time) bool {
	return day.Day() == min(s.Day, DaysInMonth(day))
}

// Annual fires once a year on the given month and day.
type Annual struct {
	Month time.Month
	Day   int
}

func (s Annual) Frequency() Frequency { return FrequencyAnnually }

func (s Annual) OccursOn(day, _ time.Time) bool {
	return day.Month() == s.Month && day.Day() == min(s.Day, DaysInMonth(day))
}

// DaysInMonth returns the number of days in the month containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysBetween(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(to.Sub(from).Hours() / 24)
}
