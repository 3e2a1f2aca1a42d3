package accounts

import (
	"github.com/google/uuid"

	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/dashboard"
	"github.com/mrodal/paydown/internal/debt"
)

type accountResponse struct {
	ID               uuid.UUID            `json:"id"`
	Name             string               `json:"name"`
	Balance          float64              `json:"balance"`
	InterestRate     float64              `json:"interest_rate"`
	MinPayment       float64              `json:"min_payment"`
	DueDay           int                  `json:"due_day,omitempty"`
	PaymentFrequency cashflow.Frequency   `json:"payment_frequency"`
	Subtype          debt.Subtype         `json:"subtype,omitempty"`
	Locked           bool                 `json:"locked"`
	DailyInterest    float64              `json:"daily_interest"`
	SuggestedPayment float64              `json:"suggested_payment,omitempty"`
	Utilization      *utilizationResponse `json:"utilization,omitempty"`
	Grace            *graceResponse       `json:"grace,omitempty"`
}

type utilizationResponse struct {
	Pct  int       `json:"pct"`
	Band debt.Band `json:"band"`
}

type graceResponse struct {
	DaysLeft int  `json:"days_left"`
	InGrace  bool `json:"in_grace"`
}

func toResponse(v dashboard.AccountView) accountResponse {
	resp := accountResponse{
		ID:               v.Account.ID,
		Name:             v.Account.Name,
		Balance:          v.Account.Balance,
		InterestRate:     v.Account.AnnualRatePct,
		MinPayment:       v.Account.MinPayment,
		DueDay:           v.Account.DueDay,
		PaymentFrequency: v.Account.PaymentFrequency,
		Subtype:          v.Account.Subtype,
		Locked:           v.Locked,
		DailyInterest:    v.DailyInterest,
		SuggestedPayment: v.SuggestedPayment,
	}

	if v.Utilization != nil {
		resp.Utilization = &utilizationResponse{
			Pct:  v.Utilization.Pct,
			Band: v.Utilization.Band,
		}
	}

	if v.Grace != nil {
		resp.Grace = &graceResponse{
			DaysLeft: v.Grace.DaysLeft,
			InGrace:  v.Grace.InGrace,
		}
	}

	return resp
}

func toResponseList(views []dashboard.AccountView) []accountResponse {
	resp := make([]accountResponse, len(views))
	for i, v := range views {
		resp[i] = toResponse(v)
	}

	return resp
}
