package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/mrodal/paydown/internal/cashflow"
	"github.com/mrodal/paydown/internal/debt"
)

// Account types as the ledger service reports them. Anything that is not a
// debt counts toward liquid cash.
const (
	accountTypeDebt = "debt"
)

// RecurringItemDTO is the wire shape of a recurring income or expense item.
// Schedule fields are optional and which ones are set depends on frequency.
type RecurringItemDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Frequency     string  `json:"frequency"`
	DayOfMonth    *int    `json:"day_of_month,omitempty"`
	DayOfWeek     *int    `json:"day_of_week,omitempty"`
	DateSpecific1 *int    `json:"date_specific_1,omitempty"`
	DateSpecific2 *int    `json:"date_specific_2,omitempty"`
	MonthOfYear   *int    `json:"month_of_year,omitempty"`
	IsVariable    bool    `json:"is_variable"`
}

// AccountDTO is the wire shape of a ledger account, debt or cash.
type AccountDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Balance          float64  `json:"balance"`
	InterestRate     float64  `json:"interest_rate"`
	MinPayment       float64  `json:"min_payment"`
	DueDay           *int     `json:"due_day,omitempty"`
	ClosingDay       *int     `json:"closing_day,omitempty"`
	PaymentFrequency string   `json:"payment_frequency"`
	DebtSubtype      *string  `json:"debt_subtype,omitempty"`
	CreditLimit      *float64 `json:"credit_limit,omitempty"`
}

// Snapshot is one consistent read of the ledger: every recurring item, every
// debt account, and the summed balance of the cash accounts.
type Snapshot struct {
	Items      []cashflow.RecurringItem
	Accounts   []debt.Account
	LiquidCash float64
	FetchedAt  time.Time
}

// ToRecurringItem maps a wire item onto the domain type. Malformed ids and
// unrecognized frequencies degrade to defaults rather than failing.
func (d RecurringItemDTO) ToRecurringItem() cashflow.RecurringItem {
	id, _ := uuid.Parse(d.ID)

	return cashflow.RecurringItem{
		ID:         id,
		Name:       d.Name,
		Amount:     d.Amount,
		Category:   cashflow.Category(d.Category),
		Schedule:   d.schedule(),
		IsVariable: d.IsVariable,
	}
}

func (d RecurringItemDTO) schedule() cashflow.Schedule {
	switch cashflow.Frequency(d.Frequency) {
	case cashflow.FrequencyWeekly:
		return cashflow.Weekly{Weekday: wireWeekday(d.DayOfWeek)}
	case cashflow.FrequencyBiweekly:
		return cashflow.Biweekly{Weekday: wireWeekday(d.DayOfWeek)}
	case cashflow.FrequencySemiMonthly:
		return cashflow.SemiMonthly{
			FirstPayDay:  intOr(d.DateSpecific1, 15),
			SecondPayDay: intOr(d.DateSpecific2, 30),
		}
	case cashflow.FrequencyAnnually:
		return cashflow.Annual{
			Month: time.Month(intOr(d.MonthOfYear, 1)),
			Day:   intOr(d.DayOfMonth, 1),
		}
	default:
		return cashflow.Monthly{Day: intOr(d.DayOfMonth, 1)}
	}
}

// ToAccount maps a wire account onto the domain debt account. Only call this
// for DTOs with IsDebt() true.
func (d AccountDTO) ToAccount() debt.Account {
	id, _ := uuid.Parse(d.ID)

	freq := cashflow.Frequency(d.PaymentFrequency)
	if freq == "" {
		freq = cashflow.FrequencyMonthly
	}

	var subtype debt.Subtype
	if d.DebtSubtype != nil {
		subtype = debt.Subtype(*d.DebtSubtype)
	}

	var limit float64
	if d.CreditLimit != nil {
		limit = *d.CreditLimit
	}

	return debt.Account{
		ID:               id,
		Name:             d.Name,
		Balance:          d.Balance,
		AnnualRatePct:    d.InterestRate,
		MinPayment:       d.MinPayment,
		DueDay:           intOr(d.DueDay, 15),
		ClosingDay:       intOr(d.ClosingDay, 0),
		PaymentFrequency: freq,
		Subtype:          subtype,
		CreditLimit:      limit,
	}
}

// IsDebt reports whether the account is a debt rather than a cash holding.
func (d AccountDTO) IsDebt() bool {
	return d.Type == accountTypeDebt
}

// The ledger numbers weekdays from Monday=0; time.Weekday starts at
// Sunday=0.
func wireWeekday(dow *int) time.Weekday {
	if dow == nil {
		return time.Monday
	}

	return time.Weekday((*dow + 1) % 7)
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}

	return *v
}
