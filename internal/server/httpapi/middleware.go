package httpapi

import (
	"context"
	"net/http"
	"strings"

	"taskhub/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// withAuth is the authentication gate applied to every task route. It
// extracts the bearer credential, verifies it, and injects the resolved user
// id into the request context. It never touches stored state.
func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeMsg(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeMsg(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
// Returns "" when the header is absent or not in bearer form.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// requestUserID returns the authenticated user id placed by withAuth.
func requestUserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
