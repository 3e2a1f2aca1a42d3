package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mrodal/paydown/internal/plan"
)

type ctxKey int

const (
	subjectKey ctxKey = iota
	entitlementKey
)

// Middleware verifies the HS256 bearer token issued by the ledger service
// and stashes the subject and plan entitlement in the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims := jwt.MapClaims{}

			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}

				return key, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			sub, _ := claims.GetSubject()

			ctx := context.WithValue(r.Context(), subjectKey, sub)
			ctx = context.WithValue(ctx, entitlementKey, plan.FromClaims(claims))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the authenticated user id, empty outside the middleware.
func Subject(ctx context.Context) string {
	sub, _ := ctx.Value(subjectKey).(string)

	return sub
}

// Entitlement returns the caller's plan entitlement. Outside the middleware
// it is unlimited, matching how a missing claim is treated.
func Entitlement(ctx context.Context) plan.Entitlement {
	ent, ok := ctx.Value(entitlementKey).(plan.Entitlement)
	if !ok {
		return plan.Unlimited
	}

	return ent
}
