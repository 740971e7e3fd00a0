// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// site. Public pages, the booking form and the admin area get their own
// middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"mcfolio/internal/handlers"
	"mcfolio/internal/middleware"
	"mcfolio/internal/notify"
	"mcfolio/internal/session"
)

// bookingRateLimit caps booking submissions per client IP. The form is
// the only unauthenticated write on the site.
const (
	bookingRateLimit  = 5
	bookingRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. static serves the compiled assets.
func New(guard *session.Guard, feed *notify.Feed, public *handlers.Public, auth *handlers.Auth, admin *handlers.Admin, static fs.FS) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Language)
	r.Use(middleware.LoadSession(guard))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Static assets.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// Admin routes — require authentication and CSRF protection.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth pages — accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// Authenticated admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/", admin.Dashboard)

			// Change feed for live dashboard refresh.
			r.Get("/events", handlers.Events(feed))

			r.Post("/bookings/{id}/finish", admin.FinishBooking)

			r.Post("/media", admin.UploadMedia)
			r.Post("/media/{id}/delete", admin.DeleteMedia)

			r.Post("/news", admin.CreateNews)
			r.Post("/news/{id}/delete", admin.DeleteNews)
		})
	})

	// Public routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.CSRF)

		r.Get("/", public.Home)
		r.Get("/about", public.About)
		r.Get("/gallery", public.Gallery)
		r.Get("/activity/{category}", public.Activity)
		r.Get("/news", public.News)
		r.Get("/news/{slug}", public.NewsArticle)
		r.Get("/booking", public.BookingPage)
		r.Get("/lang/{lang}", public.SetLanguage)

		// Booking submissions are rate limited per IP.
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(bookingRateLimit, bookingRateWindow))
			r.Post("/booking", public.BookingSubmit)
		})
	})

	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
