package middleware

import (
	"context"
	"net/http"
	"strings"

	"sparkle/internal/utils"
)

type contextKey string

// UserIDKey holds the authenticated account id (ObjectID hex) in the request
// context.
const UserIDKey contextKey = "user_id"

// AuthJWT rejects requests without a valid bearer token. The check is
// stateless: signature and expiry only, no store lookup.
func AuthJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.Error(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.Error(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			userID, err := utils.ParseJWT(parts[1], secret)
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated account id set by AuthJWT.
func UserID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(UserIDKey).(string)
	return id, ok
}
