// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"mcfolio/internal/gateway"
	"mcfolio/internal/handlers"
	"mcfolio/internal/render"
	"mcfolio/internal/session"
)

// testRouter builds the full router over an unavailable gateway. Routing
// behavior does not depend on backing services being up.
func testRouter(t *testing.T) http.Handler {
	t.Helper()

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	guard, err := session.NewGuard(session.NewMemoryKV(), "admin", "secret")
	if err != nil {
		t.Fatalf("session.NewGuard: %v", err)
	}

	gw := gateway.New(nil, nil, nil)
	public := handlers.NewPublic(renderer, gw)
	auth := handlers.NewAuth(renderer, guard)
	admin := handlers.NewAdmin(renderer, gw)

	static := fstest.MapFS{
		"site.css": &fstest.MapFile{Data: []byte("body{}")},
	}
	return New(guard, nil, public, auth, admin, static)
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestPublicRoutes(t *testing.T) {
	r := testRouter(t)

	// Every public page answers 200 even with the content store down.
	for _, path := range []string{
		"/", "/about", "/gallery", "/activity/tv-host", "/news", "/booking", "/health",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: got %d, want 200", path, w.Code)
		}
	}
}

func TestStaticAssets(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/static/site.css", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /static/site.css: got %d, want 200", w.Code)
	}
}

func TestAdminRequiresSession(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("GET /admin without session: got %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("Location: got %q, want /admin/login", loc)
	}
}

func TestLoginPageIsReachable(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin/login", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /admin/login: got %d, want 200", w.Code)
	}
}

func TestBookingPostRequiresCSRF(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/booking", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("POST /booking without CSRF token: got %d, want 403", w.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/definitely-not-a-page", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET unknown route: got %d, want 404", w.Code)
	}
}

func TestUnknownActivityCategoryRedirectsHome(t *testing.T) {
	r := testRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/activity/astronaut", nil))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("GET /activity/astronaut: got %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("Location: got %q, want /", loc)
	}
}
