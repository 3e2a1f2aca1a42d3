package cashflow

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/dashboard"
	"github.com/mrodal/paydown/internal/stats"
)

type itemResponse struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Amount        float64            `json:"amount"`
	Category      cashflow.Category  `json:"category"`
	Frequency     cashflow.Frequency `json:"frequency"`
	MonthlyAmount float64            `json:"monthly_amount"`
	IsVariable    bool               `json:"is_variable"`
}

type cashflowResponse struct {
	Income   []itemResponse `json:"income"`
	Expenses []itemResponse `json:"expenses"`
}

func toCashflowResponse(view *dashboard.CashflowView) cashflowResponse {
	return cashflowResponse{
		Income:   toItemResponses(view.Income),
		Expenses: toItemResponses(view.Expenses),
	}
}

func toItemResponses(views []dashboard.ItemView) []itemResponse {
	resp := make([]itemResponse, len(views))
	for i, v := range views {
		resp[i] = itemResponse{
			ID:            v.Item.ID,
			Name:          v.Item.Name,
			Amount:        v.Item.Amount,
			Category:      v.Item.Category,
			Frequency:     v.Item.Frequency(),
			MonthlyAmount: v.Monthly,
			IsVariable:    v.Item.IsVariable,
		}
	}

	return resp
}

type eventResponse struct {
	Name     string            `json:"name"`
	Amount   float64           `json:"amount"`
	Category cashflow.Category `json:"category"`
	IsDebt   bool              `json:"is_debt"`
}

type dayResponse struct {
	Date    time.Time       `json:"date"`
	Balance float64         `json:"balance"`
	IsToday bool            `json:"is_today"`
	Events  []eventResponse `json:"events"`
}

func toProjectionResponse(days []stats.Day) []dayResponse {
	resp := make([]dayResponse, len(days))

	for i, d := range days {
		events := make([]eventResponse, len(d.Events))
		for j, ev := range d.Events {
			events[j] = eventResponse{
				Name:     ev.Name,
				Amount:   ev.Amount,
				Category: ev.Category,
				IsDebt:   ev.Debt,
			}
		}

		resp[i] = dayResponse{
			Date:    d.Date,
			Balance: d.Balance,
			IsToday: d.IsToday,
			Events:  events,
		}
	}

	return resp
}
