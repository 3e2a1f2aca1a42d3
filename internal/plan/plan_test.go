package plan_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/mrodal/paydown/internal/plan"
)

func TestLimit(t *testing.T) {
	e := plan.Limit(3)
	assert.False(t, e.IsUnlimited())
	assert.Equal(t, 3, e.MaxActive())
	assert.True(t, e.Allows(3))
	assert.False(t, e.Allows(4))

	assert.True(t, plan.Limit(0).IsUnlimited())
	assert.True(t, plan.Limit(-1).IsUnlimited())
}

func TestUnlimited_AllowsAnything(t *testing.T) {
	assert.True(t, plan.Unlimited.Allows(0))
	assert.True(t, plan.Unlimited.Allows(1_000_000))
}

func TestFromClaims(t *testing.T) {
	type testCase struct {
		name   string
		claims jwt.MapClaims
		want   plan.Entitlement
	}

	tests := []testCase{
		{name: "Present", claims: jwt.MapClaims{plan.EntitlementClaim: float64(2)}, want: plan.Limit(2)},
		{name: "Missing", claims: jwt.MapClaims{}, want: plan.Unlimited},
		{name: "Malformed", claims: jwt.MapClaims{plan.EntitlementClaim: "two"}, want: plan.Unlimited},
		{name: "Zero", claims: jwt.MapClaims{plan.EntitlementClaim: float64(0)}, want: plan.Unlimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, plan.FromClaims(tt.claims))
		})
	}
}
