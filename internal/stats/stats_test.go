package stats_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/debt"
	"github.com/mrodal/paydown/internal/stats"
)

func monthlyItem(name string, amount float64, category cashflow.Category) cashflow.RecurringItem {
	return cashflow.RecurringItem{
		ID:       uuid.New(),
		Name:     name,
		Amount:   amount,
		Category: category,
		Schedule: cashflow.Monthly{Day: 1},
	}
}

func TestAggregate(t *testing.T) {
	income := []cashflow.RecurringItem{monthlyItem("Salary", 1000, cashflow.CategoryIncome)}
	expenses := []cashflow.RecurringItem{monthlyItem("Rent", 200, cashflow.CategoryExpense)}
	obligations := []debt.Obligation{{Name: "Visa", Amount: 50, Frequency: cashflow.FrequencyMonthly}}

	s := stats.Aggregate(income, expenses, obligations, cashflow.TimeframeMonthly)

	assert.Equal(t, 1000.0, s.Income)
	assert.Equal(t, 200.0, s.RegularExpenses)
	assert.Equal(t, 50.0, s.DebtExpenses)
	assert.Equal(t, 250.0, s.Expenses)
	assert.Equal(t, 750.0, s.Surplus)
	assert.Equal(t, 20.0, s.DebtDrainPct)
	assert.Equal(t, 250.0, s.MonthlyExpensesRaw)
}

func TestAggregate_MixedFrequencies(t *testing.T) {
	income := []cashflow.RecurringItem{
		{Name: "Wages", Amount: 500, Category: cashflow.CategoryIncome, Schedule: cashflow.Weekly{}},
	}

	s := stats.Aggregate(income, nil, nil, cashflow.TimeframeAnnually)

	assert.InDelta(t, 500*4.345*12, s.Income, 1e-9)
	assert.Zero(t, s.Expenses)
	assert.Zero(t, s.DebtDrainPct) // guarded division, no NaN
}

// MonthlyExpensesRaw stays monthly even when the summary is scoped to
// another timeframe.
func TestAggregate_MonthlyRawIndependentOfTimeframe(t *testing.T) {
	expenses := []cashflow.RecurringItem{monthlyItem("Rent", 900, cashflow.CategoryExpense)}

	s := stats.Aggregate(nil, expenses, nil, cashflow.TimeframeDaily)

	assert.InDelta(t, 900.0/30.44, s.Expenses, 1e-9)
	assert.Equal(t, 900.0, s.MonthlyExpensesRaw)
}

func TestAggregate_Idempotent(t *testing.T) {
	income := []cashflow.RecurringItem{monthlyItem("Salary", 1234.56, cashflow.CategoryIncome)}
	expenses := []cashflow.RecurringItem{monthlyItem("Rent", 78.9, cashflow.CategoryExpense)}
	obligations := []debt.Obligation{{Name: "Card", Amount: 42, Frequency: cashflow.FrequencyBiweekly}}

	first := stats.Aggregate(income, expenses, obligations, cashflow.TimeframeWeekly)
	second := stats.Aggregate(income, expenses, obligations, cashflow.TimeframeWeekly)

	assert.Equal(t, first, second)
}

func TestRecommendedReserve(t *testing.T) {
	s := stats.Summary{MonthlyExpensesRaw: 250}
	assert.Equal(t, 750.0, stats.RecommendedReserve(s))
}

func TestEvaluateReserve(t *testing.T) {
	status := stats.EvaluateReserve(600, 1000)
	assert.False(t, status.Met)
	assert.Equal(t, 600.0, status.Funded)
	assert.Equal(t, 60.0, status.FillPct)
	assert.Equal(t, 400.0, status.Deficit)

	status = stats.EvaluateReserve(1500, 1000)
	assert.True(t, status.Met)
	assert.Equal(t, 1000.0, status.Funded)
	assert.Equal(t, 100.0, status.FillPct)
	assert.Zero(t, status.Deficit)

	assert.True(t, stats.EvaluateReserve(0, 0).Met)
}
