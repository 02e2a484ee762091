package middleware

import (
	"net/http"

	"github.com/ruralpay/hacklab/internal/session"
)

// SessionRequired only checks that a user_id cookie is present. It does not
// look the user up or check any role.
func SessionRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := session.UserID(r)
		if !ok {
			writeHTML(w, http.StatusForbidden, "Access denied")
			return
		}

		ctx := session.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
