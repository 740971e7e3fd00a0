// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"mcfolio/internal/middleware"
	"mcfolio/internal/render"
	"mcfolio/internal/session"
)

// Auth groups the admin login and logout handlers.
type Auth struct {
	renderer *render.Renderer
	guard    *session.Guard
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, guard *session.Guard) *Auth {
	return &Auth{renderer: renderer, guard: guard}
}

// LoginPage renders the login form. When no admin credentials are
// configured the form is replaced with a notice, so there is nothing to
// brute-force.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.LoggedInFromCtx(r.Context()) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "admin/login", &render.PageData{
		Title: "Admin Login",
		Data:  map[string]any{"Disabled": !a.guard.Configured()},
	})
}

// LoginSubmit processes the login form.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	err := a.guard.Login(r.Context(), w, r.FormValue("username"), r.FormValue("password"))
	switch {
	case err == nil:
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	case errors.Is(err, session.ErrNotConfigured):
		a.renderer.Page(w, r, "admin/login", &render.PageData{
			Title: "Admin Login",
			Data:  map[string]any{"Disabled": true},
		})
	case errors.Is(err, session.ErrInvalidCredentials):
		w.WriteHeader(http.StatusUnauthorized)
		a.renderer.Page(w, r, "admin/login", &render.PageData{
			Title: "Admin Login",
			Data:  map[string]any{"Error": "Invalid username or password."},
		})
	default:
		slog.Error("login failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Logout destroys the session and returns to the login page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.guard.Logout(r.Context(), w, r); err != nil {
		slog.Error("logout failed", "error", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
