package dashboard

import (
	"time"

	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/dashboard"
)

type overviewResponse struct {
	Timeframe       cashflow.Timeframe `json:"timeframe"`
	Income          float64            `json:"income"`
	RegularExpenses float64            `json:"regular_expenses"`
	DebtExpenses    float64            `json:"debt_expenses"`
	Expenses        float64            `json:"expenses"`
	Surplus         float64            `json:"surplus"`
	DebtDrainPct    float64            `json:"debt_drain_pct"`
	Reserve         reserveResponse    `json:"reserve"`
	Locked          lockedResponse     `json:"locked"`
	GeneratedAt     time.Time          `json:"generated_at"`
}

type reserveResponse struct {
	Target  float64 `json:"target"`
	Funded  float64 `json:"funded"`
	FillPct float64 `json:"fill_pct"`
	Deficit float64 `json:"deficit"`
	Met     bool    `json:"met"`
}

type lockedResponse struct {
	Count              int     `json:"count"`
	TotalBalance       float64 `json:"total_balance"`
	DailyInterestDrain float64 `json:"daily_interest_drain"`
}

func toOverviewResponse(o *dashboard.Overview) overviewResponse {
	return overviewResponse{
		Timeframe:       o.Timeframe,
		Income:          o.Stats.Income,
		RegularExpenses: o.Stats.RegularExpenses,
		DebtExpenses:    o.Stats.DebtExpenses,
		Expenses:        o.Stats.Expenses,
		Surplus:         o.Stats.Surplus,
		DebtDrainPct:    o.Stats.DebtDrainPct,
		Reserve: reserveResponse{
			Target:  o.Reserve.Target,
			Funded:  o.Reserve.Funded,
			FillPct: o.Reserve.FillPct,
			Deficit: o.Reserve.Deficit,
			Met:     o.Reserve.Met,
		},
		Locked: lockedResponse{
			Count:              o.Locked.Count,
			TotalBalance:       o.Locked.TotalBalance,
			DailyInterestDrain: o.Locked.DailyInterestDrain,
		},
		GeneratedAt: o.GeneratedAt,
	}
}
