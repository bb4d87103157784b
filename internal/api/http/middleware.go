package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"rentaldesk-backend/internal/logger"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/security"
)

// AuthMiddleware verifies the bearer token on every guarded route. An
// unauthenticated request gets a 401 carrying the login URL with the
// originally intended destination preserved for post-login redirect.
type AuthMiddleware struct {
	verifier security.TokenVerifier
	loginURL string
}

func NewAuthMiddleware(verifier security.TokenVerifier, loginURL string) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, loginURL: loginURL}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		claims, err := m.verifier.VerifyToken(token)
		if err != nil {
			m.unauthorized(w, r, err)
			return
		}
		ctx := withClaims(r.Context(), claims)
		ctx = navotar.WithBearer(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, security.ErrMissingToken) {
		logger.Debug("rejected bearer token", "path", r.URL.Path, "error", err)
	}

	redirect, _ := url.Parse(m.loginURL)
	q := redirect.Query()
	q.Set("redirect", r.URL.RequestURI())
	redirect.RawQuery = q.Encode()

	writeJSON(w, http.StatusUnauthorized, struct {
		Message  string `json:"message"`
		LoginURL string `json:"loginUrl"`
	}{
		Message:  "authentication required",
		LoginURL: redirect.String(),
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
