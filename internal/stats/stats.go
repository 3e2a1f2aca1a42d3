package stats

import (
	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/debt"
)

// Summary is a timeframe-scoped roll-up of recurring cash flow.
// MonthlyExpensesRaw is always the monthly figure regardless of the
// requested timeframe; reserve sizing heuristics need it even when the
// dashboard is showing a weekly or annual view.
type Summary struct {
	Timeframe          cashflow.Timeframe
	Income             float64
	RegularExpenses    float64
	DebtExpenses       float64
	Expenses           float64
	Surplus            float64
	DebtDrainPct       float64
	MonthlyExpensesRaw float64
}

// Aggregate rolls recurring income, non-debt expenses and synthesized debt
// obligations into a summary scoped to the requested timeframe. Whether
// obligations include locked accounts is the caller's choice; the
// aggregation itself is filter-agnostic and has no hidden state.
func Aggregate(income, nonDebtExpenses []cashflow.RecurringItem, obligations []debt.Obligation, tf cashflow.Timeframe) Summary {
	var monthlyIncome, monthlyRegular, monthlyDebt float64

	for _, item := range income {
		monthlyIncome += item.MonthlyAmount()
	}

	for _, item := range nonDebtExpenses {
		monthlyRegular += item.MonthlyAmount()
	}

	for _, ob := range obligations {
		monthlyDebt += cashflow.ToMonthly(ob.Amount, ob.Frequency)
	}

	s := Summary{
		Timeframe:          tf,
		Income:             cashflow.ToTimeframe(monthlyIncome, tf),
		RegularExpenses:    cashflow.ToTimeframe(monthlyRegular, tf),
		DebtExpenses:       cashflow.ToTimeframe(monthlyDebt, tf),
		MonthlyExpensesRaw: monthlyRegular + monthlyDebt,
	}

	s.Expenses = s.RegularExpenses + s.DebtExpenses
	s.Surplus = s.Income - s.Expenses

	if s.Expenses > 0 {
		s.DebtDrainPct = s.DebtExpenses / s.Expenses * 100
	}

	return s
}
