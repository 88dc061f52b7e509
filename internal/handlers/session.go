package handlers

import (
	"net/http"
	"strings"

	"github.com/AnshRaj112/cinnamon-backend/internal/services"
	"github.com/google/uuid"
)

func extractBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// currentUser validates the Bearer session. ok is false for anonymous requests.
func currentUser(r *http.Request) (uuid.UUID, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return uuid.Nil, false
	}
	userID, ok, err := services.ValidateSession(r.Context(), token)
	if err != nil || !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// requireUser writes 401 and returns false when the request has no valid session.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := currentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
	}
	return userID, ok
}
