package http

import (
	"context"

	"rentaldesk-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "session-claims"

// withClaims stores the verified session claims on the request context
func withClaims(ctx context.Context, claims *security.SessionClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the verified claims for the request, if any
func ClaimsFromContext(ctx context.Context) (*security.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*security.SessionClaims)
	return claims, ok
}
