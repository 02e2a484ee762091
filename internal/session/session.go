// Package session derives the caller's identity from the user_id cookie. The
// cookie value is the whole session: it is not signed, has no expiry and has
// no server-side record.
package session

import (
	"context"
	"net/http"
)

const CookieName = "user_id"

type contextKey struct{}

// UserID returns the raw cookie value and whether a non-empty one was sent.
func UserID(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Set establishes a session for id.
func Set(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: false,
	})
}

func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}
