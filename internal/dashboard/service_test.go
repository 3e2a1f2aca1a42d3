package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/dashboard"
	"github.com/mrodal/paydown/internal/debt"
	"github.com/mrodal/paydown/internal/ledger"
	"github.com/mrodal/paydown/internal/plan"
)

var (
	visaID = uuid.MustParse("5f8a4b8e-36d1-4a1c-9d6b-111111111111")
	loanID = uuid.MustParse("5f8a4b8e-36d1-4a1c-9d6b-222222222222")
)

func testSnapshot() *ledger.Snapshot {
	return &ledger.Snapshot{
		Items: []cashflow.RecurringItem{
			{Name: "Salary", Amount: 1000, Category: cashflow.CategoryIncome, Schedule: cashflow.Monthly{Day: 1}},
			{Name: "Rent", Amount: 200, Category: cashflow.CategoryExpense, Schedule: cashflow.Monthly{Day: 5}},
		},
		Accounts: []debt.Account{
			{
				ID: visaID, Name: "Visa", Balance: 800, AnnualRatePct: 30,
				MinPayment: 50, DueDay: 21, PaymentFrequency: cashflow.FrequencyMonthly,
				Subtype: debt.SubtypeCreditCard, CreditLimit: 1000,
			},
			{
				ID: loanID, Name: "Car loan", Balance: 1000, AnnualRatePct: 10,
				MinPayment: 25, DueDay: 5, PaymentFrequency: cashflow.FrequencyMonthly,
				Subtype: debt.SubtypeAutoLoan,
			},
		},
		LiquidCash: 600,
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestService_Overview(t *testing.T) {
	type testCase struct {
		name      string
		ent       plan.Entitlement
		setupMock func(m *dashboard.MockSource)
		check     func(t *testing.T, o *dashboard.Overview)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "UnlimitedPlan",
			ent:  plan.Unlimited,
			setupMock: func(m *dashboard.MockSource) {
				m.EXPECT().Current().Return(testSnapshot(), true)
			},
			check: func(t *testing.T, o *dashboard.Overview) {
				assert.Equal(t, cashflow.TimeframeMonthly, o.Timeframe)
				assert.Equal(t, 1000.0, o.Stats.Income)
				assert.Equal(t, 200.0, o.Stats.RegularExpenses)
				assert.Equal(t, 75.0, o.Stats.DebtExpenses)
				assert.Equal(t, 725.0, o.Stats.Surplus)
				assert.Zero(t, o.Locked.Count)
			},
		},
		{
			name: "LimitedPlanLocksLowestAPR",
			ent:  plan.Limit(1),
			setupMock: func(m *dashboard.MockSource) {
				m.EXPECT().Current().Return(testSnapshot(), true)
			},
			check: func(t *testing.T, o *dashboard.Overview) {
				// Only the Visa minimum counts; the car loan is locked.
				assert.Equal(t, 50.0, o.Stats.DebtExpenses)
				assert.Equal(t, 1, o.Locked.Count)
				assert.Equal(t, 1000.0, o.Locked.TotalBalance)
				assert.InDelta(t, 0.2740, o.Locked.DailyInterestDrain, 0.0001)
			},
		},
		{
			name: "ReserveShortfall",
			ent:  plan.Unlimited,
			setupMock: func(m *dashboard.MockSource) {
				m.EXPECT().Current().Return(testSnapshot(), true)
			},
			check: func(t *testing.T, o *dashboard.Overview) {
				// Raw monthly expenses 275 -> target 825, funded 600.
				assert.Equal(t, 825.0, o.Reserve.Target)
				assert.Equal(t, 600.0, o.Reserve.Funded)
				assert.False(t, o.Reserve.Met)
			},
		},
		{
			name: "ColdStartTriggersRefresh",
			ent:  plan.Unlimited,
			setupMock: func(m *dashboard.MockSource) {
				m.EXPECT().Current().Return(nil, false)
				m.EXPECT().Refresh(gomock.Any()).Return(testSnapshot(), nil)
			},
			check: func(t *testing.T, o *dashboard.Overview) {
				assert.Equal(t, 1000.0, o.Stats.Income)
			},
		},
		{
			name: "RefreshFails",
			ent:  plan.Unlimited,
			setupMock: func(m *dashboard.MockSource) {
				m.EXPECT().Current().Return(nil, false)
				m.EXPECT().Refresh(gomock.Any()).Return(nil, errors.New("ledger down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := dashboard.NewMockSource(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(source)
			}

			svc := dashboard.NewServiceWithClock(source, fixedClock())
			got, err := svc.Overview(context.Background(), tt.ent, cashflow.TimeframeMonthly)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			tt.check(t, got)
		})
	}
}

func TestService_Accounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := dashboard.NewMockSource(ctrl)
	source.EXPECT().Current().Return(testSnapshot(), true)

	svc := dashboard.NewServiceWithClock(source, fixedClock())

	views, err := svc.Accounts(context.Background(), plan.Limit(1))
	require.NoError(t, err)
	require.Len(t, views, 2)

	visa := views[0]
	assert.False(t, visa.Locked)
	require.NotNil(t, visa.Utilization)
	assert.Equal(t, 80, visa.Utilization.Pct)
	assert.Equal(t, debt.BandCritical, visa.Utilization.Band)
	require.NotNil(t, visa.Grace)
	assert.Equal(t, 6, visa.Grace.DaysLeft) // due the 21st, today the 15th
	assert.True(t, visa.Grace.InGrace)
	assert.Equal(t, 50.0, visa.Obligation.Amount)

	loan := views[1]
	assert.True(t, loan.Locked)
	assert.Nil(t, loan.Utilization)
	assert.Nil(t, loan.Grace)
	assert.InDelta(t, 0.2740, loan.DailyInterest, 0.0001)
	assert.Zero(t, loan.SuggestedPayment) // ledger already reports a minimum
}

func TestService_Accounts_SuggestedPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snap := testSnapshot()
	snap.Accounts[0].MinPayment = 0

	source := dashboard.NewMockSource(ctrl)
	source.EXPECT().Current().Return(snap, true)

	svc := dashboard.NewServiceWithClock(source, fixedClock())

	views, err := svc.Accounts(context.Background(), plan.Unlimited)
	require.NoError(t, err)

	// Visa: 1% of 800 plus one month of interest at 30% APR, over the $25
	// floor.
	assert.InDelta(t, 28.0, views[0].SuggestedPayment, 1e-9)
	assert.Zero(t, views[0].Obligation.Amount)
}

func TestService_Cashflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := dashboard.NewMockSource(ctrl)
	source.EXPECT().Current().Return(testSnapshot(), true)

	svc := dashboard.NewServiceWithClock(source, fixedClock())

	view, err := svc.Cashflow(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Income, 1)
	require.Len(t, view.Expenses, 1)
	assert.Equal(t, 1000.0, view.Income[0].Monthly)
	assert.Equal(t, "Rent", view.Expenses[0].Item.Name)
}

func TestService_Projection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := dashboard.NewMockSource(ctrl)
	source.EXPECT().Current().Return(testSnapshot(), true)

	svc := dashboard.NewServiceWithClock(source, fixedClock())

	days, err := svc.Projection(context.Background(), plan.Limit(1), 1)
	require.NoError(t, err)
	require.Len(t, days, 31) // March window

	// The locked car loan (due the 5th) contributes no event; the Visa
	// minimum (due the 21st) does.
	for _, d := range days {
		for _, ev := range d.Events {
			if ev.Debt {
				assert.Equal(t, "Visa", ev.Name)
			}
		}
	}
}

func TestService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := dashboard.NewMockSource(ctrl)
	source.EXPECT().Refresh(gomock.Any()).Return(testSnapshot(), nil)

	svc := dashboard.NewService(source)

	assert.NoError(t, svc.Refresh(context.Background()))
}
