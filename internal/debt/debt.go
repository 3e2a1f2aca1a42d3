package debt

import (
	"github.com/google/uuid"

	"github.com/mrodal/paydown/internal/cashflow"
)

// Subtype classifies a debt account.
type Subtype string

const (
	SubtypeCreditCard   Subtype = "credit_card"
	SubtypeHELOC        Subtype = "heloc"
	SubtypeAutoLoan     Subtype = "auto_loan"
	SubtypeMortgage     Subtype = "mortgage"
	SubtypePersonalLoan Subtype = "personal_loan"
	SubtypeStudentLoan  Subtype = "student_loan"
)

// Revolving reports whether the subtype is revolving credit, i.e. carries
// a credit limit and a variable balance rather than a fixed term.
func (s Subtype) Revolving() bool {
	return s == SubtypeCreditCard || s == SubtypeHELOC
}

// Account represents a read-only snapshot of a debt account owned by the
// upstream ledger service.
type Account struct {
	ID               uuid.UUID
	Name             string
	Balance          float64 // outstanding amount owed, >= 0
	AnnualRatePct    float64 // APR as a percentage, e.g. 24.99
	MinPayment       float64
	DueDay           int // 1-31, 0 when unset
	ClosingDay       int // 1-31, 0 when unset
	PaymentFrequency cashflow.Frequency
	Subtype          Subtype
	CreditLimit      float64 // only meaningful for revolving subtypes
}

// IsRevolving reports whether the account is revolving credit.
func (a Account) IsRevolving() bool { return a.Subtype.Revolving() }

// DailyInterest returns the interest the account accrues per day.
func (a Account) DailyInterest() float64 {
	return a.Balance * a.AnnualRatePct / 100 / 365
}
