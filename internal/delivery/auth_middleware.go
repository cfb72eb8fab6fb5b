package delivery

import (
	"context"
	"net/http"
	"strings"

	"github.com/Vovarama1992/studyhall/internal/ports"
)

type contextKey string

const userContextKey contextKey = "authUser"

// AuthMiddleware validates the access_token cookie against the identity
// service and attaches the resolved user to the request context.
func AuthMiddleware(identity ports.IdentityService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			cookie, err := r.Cookie(accessTokenCookie)
			if err != nil {
				http.Error(w, "You need to login or sign up first.", http.StatusUnauthorized)
				return
			}

			user, err := identity.GetUser(r.Context(), cookie.Value)
			if err != nil {
				if strings.Contains(err.Error(), "expired") {
					http.Error(w, "Session expired. Please login again.", http.StatusUnauthorized)
					return
				}
				http.Error(w, "Invalid token or user not authenticated.", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user attached by AuthMiddleware.
func UserFromContext(ctx context.Context) (*ports.AuthUser, bool) {
	user, ok := ctx.Value(userContextKey).(*ports.AuthUser)
	return user, ok
}
