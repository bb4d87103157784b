package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing bearer token")
)

// SessionClaims is the identity-provider token payload we consume. The
// tenant scope (client id) rides along as a custom claim.
type SessionClaims struct {
	ClientID string `json:"navotar_clientid,omitempty"`
	UserID   string `json:"navotar_userid,omitempty"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// ExpiresIn returns the remaining token lifetime; zero when already expired
func (c *SessionClaims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	remaining := c.ExpiresAt.Time.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RefreshIn derives the refresh-timer interval from token expiry: refresh
// at 80% of the remaining lifetime, never sooner than a minute out.
func RefreshIn(claims *SessionClaims, now time.Time) time.Duration {
	remaining := claims.ExpiresIn(now)
	interval := remaining * 8 / 10
	if interval < time.Minute {
		interval = time.Minute
	}
	return interval
}

// TokenVerifier validates bearer tokens issued by the identity provider
type TokenVerifier interface {
	VerifyToken(tokenString string) (*SessionClaims, error)
	Close()
}

type jwksVerifier struct {
	jwks     *keyfunc.JWKS
	issuer   string
	audience string
}

// NewJWKSVerifier builds a verifier backed by the provider's JWKS endpoint.
// Keys refresh in the background until Close is called.
func NewJWKSVerifier(ctx context.Context, jwksURL, issuer, audience string) (TokenVerifier, error) {
	jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  5 * time.Minute,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS from %s: %w", jwksURL, err)
	}
	return &jwksVerifier{jwks: jwks, issuer: issuer, audience: audience}, nil
}

func (v *jwksVerifier) VerifyToken(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256", "ES256"})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, v.jwks.Keyfunc, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ClientID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (v *jwksVerifier) Close() {
	v.jwks.EndBackground()
}
