package plan

import (
	"github.com/golang-jwt/jwt/v5"
)

// EntitlementClaim is the token claim carrying the subscription tier's
// active debt account cap.
const EntitlementClaim = "max_active_debts"

// Entitlement represents how many debt accounts a subscription tier keeps
// active. The zero value is unlimited.
type Entitlement struct {
	maxActive int
	limited   bool
}

// Unlimited is the entitlement with no active account cap.
var Unlimited = Entitlement{}

// Limit returns an entitlement capped at n active debt accounts.
// Non-positive n means unlimited.
func Limit(n int) Entitlement {
	if n <= 0 {
		return Unlimited
	}

	return Entitlement{maxActive: n, limited: true}
}

// IsUnlimited reports whether the entitlement carries no cap.
func (e Entitlement) IsUnlimited() bool { return !e.limited }

// MaxActive returns the cap. It is only meaningful when the entitlement is
// limited.
func (e Entitlement) MaxActive() int { return e.maxActive }

// Allows reports whether n debt accounts all fit within the cap.
func (e Entitlement) Allows(n int) bool { return !e.limited || n <= e.maxActive }

// FromClaims reads the entitlement claim from an upstream-issued token.
// A missing or malformed claim grants unlimited access.
func FromClaims(claims jwt.MapClaims) Entitlement {
	v, ok := claims[EntitlementClaim]
	if !ok {
		return Unlimited
	}

	// JSON numbers decode into float64.
	n, ok := v.(float64)
	if !ok {
		return Unlimited
	}

	return Limit(int(n))
}
