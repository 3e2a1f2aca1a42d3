package debt

import (
	"github.com/google/uuid"

	"github.com/mrodal/paydown/internal/cashflow"
)

// Obligation is a virtual recurring expense derived from a debt account's
// minimum payment. Obligations are never persisted; they are regenerated
// from the account snapshot on every pass, and Balance and AnnualRatePct
// are carried through for display.
type Obligation struct {
	SourceAccountID uuid.UUID
	Name            string
	Amount          float64
	Frequency       cashflow.Frequency
	DueDay          int
	Balance         float64
	AnnualRatePct   float64
}

// Synthesize derives exactly one obligation per debt account, locked or
// not. Accounts with a zero minimum payment still produce an obligation
// with amount zero; estimating a real minimum is the upstream service's
// job. No aggregation or filtering happens here.
func Synthesize(accounts []Account) []Obligation {
	obligations := make([]Obligation, len(accounts))
	for i, acc := range accounts {
		obligations[i] = SynthesizeOne(acc)
	}

	return obligations
}

// SynthesizeOne derives the obligation for a single account.
func SynthesizeOne(acc Account) Obligation {
	return Obligation{
		SourceAccountID: acc.ID,
		Name:            acc.Name,
		Amount:          acc.MinPayment,
		Frequency:       acc.PaymentFrequency,
		DueDay:          acc.DueDay,
		Balance:         acc.Balance,
		AnnualRatePct:   acc.AnnualRatePct,
	}
}
