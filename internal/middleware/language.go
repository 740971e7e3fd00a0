// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"mcfolio/internal/i18n"
)

// langKey is the context key for the request's language resolver.
const langKey contextKey = "lang"

// cookieTTL keeps the language choice for a year.
const cookieTTL = 365 * 24 * 60 * 60

// cookieStore adapts the request/response cookie pair to i18n.Store, so
// a visitor's language choice survives across visits.
type cookieStore struct {
	r *http.Request
	w http.ResponseWriter
}

func (c *cookieStore) Get(key string) (string, bool) {
	cookie, err := c.r.Cookie(key)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (c *cookieStore) Set(key, value string) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   cookieTTL,
		SameSite: http.SameSiteLaxMode,
	})
}

// Language builds a per-request translation resolver from the language
// cookie and stores it in the context. Requests without a cookie get the
// default language (Vietnamese).
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tr := i18n.NewResolver(&cookieStore{r: r, w: w})
		ctx := context.WithValue(r.Context(), langKey, tr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ResolverFromCtx extracts the request's translation resolver. Returns
// nil when the Language middleware did not run.
func ResolverFromCtx(ctx context.Context) *i18n.Resolver {
	tr, _ := ctx.Value(langKey).(*i18n.Resolver)
	return tr
}
