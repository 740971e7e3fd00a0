// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders sets baseline security headers on every response, public
// pages and admin alike.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// No MIME-sniffing of responses.
		h.Set("X-Content-Type-Options", "nosniff")

		// Only same-origin frames; the admin dashboard must not be embeddable.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// Legacy XSS filter off, it does more harm than good.
		h.Set("X-XSS-Protection", "0")

		// Keep the Referer to origin-only when leaving the site.
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// The site never needs these browser capabilities.
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=(), interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}
