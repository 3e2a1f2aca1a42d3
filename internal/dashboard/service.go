package dashboard

import (
	"context"
	"time"

	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/debt"
	"github.com/mrodal/paydown/internal/ledger"
	"github.com/mrodal/paydown/internal/plan"
	"github.com/mrodal/paydown/internal/stats"
)

//go:generate mockgen -source=service.go -destination=source_mock.go -package=dashboard
type Source interface {
	Refresh(ctx context.Context) (*ledger.Snapshot, error)
	Current() (*ledger.Snapshot, bool)
}

type Service struct {
	source Source
	now    func() time.Time
}

func NewService(source Source) *Service {
	return NewServiceWithClock(source, time.Now)
}

// NewServiceWithClock pins the time source; grace windows and projection
// anchors depend on the current day.
func NewServiceWithClock(source Source, now func() time.Time) *Service {
	return &Service{source: source, now: now}
}

// Overview is the headline dashboard payload: timeframe-scoped stats,
// reserve status, and the cost of accounts locked by the caller's plan.
type Overview struct {
	Timeframe   cashflow.Timeframe
	Stats       stats.Summary
	Reserve     stats.ReserveStatus
	Locked      LockedSummary
	GeneratedAt time.Time
}

type LockedSummary struct {
	Count              int
	TotalBalance       float64
	DailyInterestDrain float64
}

// AccountView is a debt account decorated with everything the dashboard
// shows about it. Utilization and Grace are nil for non-revolving accounts
// and for revolving accounts without a credit limit.
type AccountView struct {
	Account       debt.Account
	Obligation    debt.Obligation
	Locked        bool
	Utilization   *debt.Utilization
	Grace         *debt.Grace
	DailyInterest float64

	// SuggestedPayment is an estimated minimum for accounts whose snapshot
	// carries none. Zero when the ledger already reports a minimum.
	SuggestedPayment float64
}

type ItemView struct {
	Item    cashflow.RecurringItem
	Monthly float64
}

type CashflowView struct {
	Income   []ItemView
	Expenses []ItemView
}

func (s *Service) Overview(ctx context.Context, ent plan.Entitlement, tf cashflow.Timeframe) (*Overview, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if tf == "" {
		tf = cashflow.TimeframeMonthly
	}

	income, expenses := splitByCategory(snap.Items)
	part := debt.PartitionByEntitlement(snap.Accounts, ent)
	obligations := activeObligations(snap.Accounts, part)

	summary := stats.Aggregate(income, expenses, obligations, tf)

	return &Overview{
		Timeframe: tf,
		Stats:     summary,
		Reserve:   stats.EvaluateReserve(snap.LiquidCash, stats.RecommendedReserve(summary)),
		Locked: LockedSummary{
			Count:              len(part.LockedIDs),
			TotalBalance:       part.LockedTotalBalance,
			DailyInterestDrain: part.LockedDailyInterestDrain,
		},
		GeneratedAt: s.now().UTC(),
	}, nil
}

func (s *Service) Accounts(ctx context.Context, ent plan.Entitlement) ([]AccountView, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	part := debt.PartitionByEntitlement(snap.Accounts, ent)
	locked := part.LockedSet()
	today := s.now().UTC()

	views := make([]AccountView, 0, len(snap.Accounts))

	for _, acc := range snap.Accounts {
		view := AccountView{
			Account:       acc,
			Obligation:    debt.SynthesizeOne(acc),
			Locked:        locked[acc.ID],
			DailyInterest: acc.DailyInterest(),
		}

		if acc.MinPayment == 0 {
			view.SuggestedPayment = debt.EstimateMinimumPayment(acc.Balance, acc.AnnualRatePct, acc.Subtype, 0)
		}

		if acc.IsRevolving() && acc.CreditLimit > 0 {
			util := debt.ClassifyUtilization(acc.Balance, acc.CreditLimit)
			grace := debt.ClassifyGracePeriod(acc.DueDay, today)
			view.Utilization = &util
			view.Grace = &grace
		}

		views = append(views, view)
	}

	return views, nil
}

func (s *Service) Cashflow(ctx context.Context) (*CashflowView, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	income, expenses := splitByCategory(snap.Items)

	return &CashflowView{
		Income:   itemViews(income),
		Expenses: itemViews(expenses),
	}, nil
}

// Projection runs the day-by-day balance forecast over the active accounts
// only; locked accounts do not contribute obligations.
func (s *Service) Projection(ctx context.Context, ent plan.Entitlement, months int) ([]stats.Day, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	part := debt.PartitionByEntitlement(snap.Accounts, ent)
	obligations := activeObligations(snap.Accounts, part)

	return stats.Project(snap.Items, obligations, snap.LiquidCash, s.now().UTC(), months), nil
}

// Refresh forces a new snapshot fetch.
func (s *Service) Refresh(ctx context.Context) error {
	_, err := s.source.Refresh(ctx)

	return err
}

func (s *Service) snapshot(ctx context.Context) (*ledger.Snapshot, error) {
	if snap, ok := s.source.Current(); ok {
		return snap, nil
	}

	return s.source.Refresh(ctx)
}

func splitByCategory(items []cashflow.RecurringItem) (income, expenses []cashflow.RecurringItem) {
	for _, item := range items {
		if item.Category == cashflow.CategoryIncome {
			income = append(income, item)
			continue
		}

		expenses = append(expenses, item)
	}

	return income, expenses
}

func activeObligations(accounts []debt.Account, part debt.Partition) []debt.Obligation {
	locked := part.LockedSet()

	active := make([]debt.Account, 0, len(part.ActiveIDs))

	for _, acc := range accounts {
		if !locked[acc.ID] {
			active = append(active, acc)
		}
	}

	return debt.Synthesize(active)
}

func itemViews(items []cashflow.RecurringItem) []ItemView {
	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = ItemView{Item: item, Monthly: item.MonthlyAmount()}
	}

	return views
}
