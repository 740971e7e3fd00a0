// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"mcfolio/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// AuthKey is the context key for the authentication flag.
	AuthKey contextKey = "auth"
)

// LoadSession checks the request's session token against the guard and
// stores the result in the request context. Downstream handlers read it
// via LoggedInFromCtx(). This middleware does NOT enforce authentication.
func LoadSession(guard *session.Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := guard.Authenticated(r.Context(), r)
			if err != nil {
				// Treat a broken session store as unauthenticated.
				next.ServeHTTP(w, r)
				return
			}

			if ok {
				ctx := context.WithValue(r.Context(), AuthKey, true)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth redirects unauthenticated users to the login page.
// Must be applied after LoadSession in the middleware chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !LoggedInFromCtx(r.Context()) {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// LoggedInFromCtx reports whether the request carries a live admin session.
func LoggedInFromCtx(ctx context.Context) bool {
	ok, _ := ctx.Value(AuthKey).(bool)
	return ok
}
