package http

import (
	"net/http"
	"strconv"
	"time"

	"rentaldesk-backend/internal/security"
)

// sessionInfo describes the authenticated session to the caller, including
// when the access token should be refreshed
type sessionInfo struct {
	Name             string `json:"name,omitempty"`
	ClientID         string `json:"clientId"`
	UserID           string `json:"userId,omitempty"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
	RefreshInSeconds int64  `json:"refreshInSeconds"`
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Message: "authentication required"})
		return
	}

	now := time.Now()
	writeJSON(w, http.StatusOK, sessionInfo{
		Name:             claims.Name,
		ClientID:         claims.ClientID,
		UserID:           claims.UserID,
		ExpiresInSeconds: int64(claims.ExpiresIn(now).Seconds()),
		RefreshInSeconds: int64(security.RefreshIn(claims, now).Seconds()),
	})
}

// sessionUserID resolves the token's user id; profile routes are scoped to
// the authenticated operator only
func sessionUserID(r *http.Request) (int32, bool) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(claims.UserID)
	if err != nil || n <= 0 {
		return 0, false
	}
	return int32(n), true
}

func (s *Server) handleUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		writeJSON(w, http.StatusForbidden, errorBody{Message: "token carries no user id"})
		return
	}
	user, err := s.users.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUserPermissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(r)
	if !ok {
		writeJSON(w, http.StatusForbidden, errorBody{Message: "token carries no user id"})
		return
	}
	permissions, err := s.users.GetPermissions(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, permissions)
}
