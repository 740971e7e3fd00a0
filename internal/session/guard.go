// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session guards the admin area. A single configured credential
// pair is checked with bcrypt; successful logins get an opaque random
// token stored in a KV with a 24 hour TTL and mirrored in a cookie.
package session

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "mc_session"

	// DefaultTTL is how long a session lives before automatic expiry.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces session keys in the KV to avoid collisions.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// ErrNotConfigured is returned when no admin credential pair was set. In
// that case the admin area stays closed; there is no default login.
var ErrNotConfigured = errors.New("admin credentials not configured")

// ErrInvalidCredentials is returned when the username or password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Guard validates admin credentials and manages session tokens.
type Guard struct {
	kv       KV
	username string
	passHash []byte
	ttl      time.Duration
}

// NewGuard builds a guard for the given credential pair. The password is
// bcrypt-hashed once at startup so the plaintext is not kept around.
// Empty credentials produce a guard that rejects every login with
// ErrNotConfigured.
func NewGuard(kv KV, username, password string) (*Guard, error) {
	g := &Guard{kv: kv, ttl: DefaultTTL}

	if username == "" || password == "" {
		return g, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	g.username = username
	g.passHash = hash
	return g, nil
}

// Configured reports whether a credential pair was set.
func (g *Guard) Configured() bool {
	return g.username != ""
}

// Login checks the credential pair and, on success, stores a fresh token
// and sets the session cookie. Returns ErrNotConfigured when no admin
// credentials exist and ErrInvalidCredentials on a mismatch.
func (g *Guard) Login(ctx context.Context, w http.ResponseWriter, username, password string) error {
	if !g.Configured() {
		return ErrNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(g.passHash, []byte(password))
	if !userOK || passErr != nil {
		return ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return fmt.Errorf("session token: %w", err)
	}

	if err := g.kv.Set(ctx, keyPrefix+token, g.username, g.ttl); err != nil {
		return fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true behind TLS in production
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(g.ttl.Seconds()),
	})

	return nil
}

// Authenticated reports whether the request carries a live session token.
func (g *Guard) Authenticated(ctx context.Context, r *http.Request) (bool, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false, nil // No cookie = no session (not an error)
	}

	value, err := g.kv.Get(ctx, keyPrefix+cookie.Value)
	if err != nil {
		return false, fmt.Errorf("session get: %w", err)
	}
	return value != "", nil
}

// Logout removes the session from the KV and clears the cookie.
func (g *Guard) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // No cookie, nothing to destroy
	}

	g.kv.Del(ctx, keyPrefix+cookie.Value)

	// Expire the cookie immediately.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return nil
}

// generateToken creates a cryptographically random session identifier.
func generateToken() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
