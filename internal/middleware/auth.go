package middleware

import (
	"context"
	"net/http"

	"coursecraft/internal/model"
	"coursecraft/internal/service"
	"coursecraft/internal/session"
)

// Injected key type to avoid context collisions
type contextKey string

const UserContextKey = contextKey("user")

// CurrentUser returns the authenticated principal placed in the request
// context by AuthMiddleware, or nil for anonymous requests.
func CurrentUser(r *http.Request) *model.User {
	u, _ := r.Context().Value(UserContextKey).(*model.User)
	return u
}

// AuthMiddleware resolves the session's principal on each request and
// injects the loaded User into the context. Requests without an
// established session are redirected to the login page.
func AuthMiddleware(store session.Store, auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := store.UserID(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			user, err := auth.GetUser(r.Context(), userID)
			if err != nil {
				// Stale session pointing at a deleted or unknown user.
				_ = store.ClearUserID(w, r)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
