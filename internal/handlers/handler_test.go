// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Handlers depend on the gateway only through interfaces, so tests run
// against an in-memory fake instead of PostgreSQL.
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mcfolio/internal/gateway"
	"mcfolio/internal/models"
	"mcfolio/internal/render"
	"mcfolio/internal/session"
	"mcfolio/internal/taxonomy"
)

// fakeGateway implements PublicGateway and AdminGateway over in-memory
// slices. Setting err forces every call to fail with it.
type fakeGateway struct {
	bookings []models.Booking
	media    []models.Media
	news     []models.News
	err      error

	finished []uuid.UUID
	uploads  []gateway.MediaUpload
	deleted  []uuid.UUID
}

func (f *fakeGateway) Bookings(context.Context) ([]models.Booking, error) {
	return f.bookings, f.err
}

func (f *fakeGateway) Media(context.Context) ([]models.Media, error) {
	return f.media, f.err
}

func (f *fakeGateway) MediaByCategory(_ context.Context, c taxonomy.Category) ([]models.Media, error) {
	if f.err != nil {
		return nil, f.err
	}
	label := c.Label()
	var out []models.Media
	for _, m := range f.media {
		if m.Category != nil && *m.Category == label {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeGateway) News(context.Context) ([]models.News, error) {
	return f.news, f.err
}

func (f *fakeGateway) LatestNews(_ context.Context, limit int) ([]models.News, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.news) > limit {
		return f.news[:limit], nil
	}
	return f.news, nil
}

func (f *fakeGateway) NewsBySlug(_ context.Context, slug string) (*models.News, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.news {
		if f.news[i].Slug == slug {
			return &f.news[i], nil
		}
	}
	return nil, gateway.ErrNotFound
}

func (f *fakeGateway) CreateBooking(_ context.Context, req gateway.BookingRequest) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	if req.FullName == "" || req.Phone == "" {
		return nil, gateway.ErrRejected
	}
	date, err := models.ParseBookingDate(req.BookingDate)
	if err != nil {
		return nil, gateway.ErrRejected
	}
	b := models.Booking{
		ID:          uuid.New(),
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		BookingDate: date,
		Status:      models.BookingPending,
		CreatedAt:   time.Now(),
	}
	f.bookings = append(f.bookings, b)
	return &b, nil
}

func (f *fakeGateway) FinishBooking(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].IsFinished = true
			f.finished = append(f.finished, id)
			return &f.bookings[i], nil
		}
	}
	return nil, gateway.ErrNotFound
}

func (f *fakeGateway) UploadMedia(_ context.Context, up gateway.MediaUpload) (*models.Media, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(up.Data) == 0 {
		return nil, gateway.ErrRejected
	}
	f.uploads = append(f.uploads, up)
	m := models.Media{ID: uuid.New(), URL: "https://cdn.test/" + up.Filename, Kind: models.MediaImage}
	f.media = append(f.media, m)
	return &m, nil
}

func (f *fakeGateway) DeleteMedia(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.media {
		if f.media[i].ID == id {
			f.media = append(f.media[:i], f.media[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return gateway.ErrNotFound
}

func (f *fakeGateway) CreateNews(_ context.Context, draft gateway.NewsDraft) (*models.News, error) {
	if f.err != nil {
		return nil, f.err
	}
	if draft.Title == "" || draft.Content == "" {
		return nil, gateway.ErrRejected
	}
	n := models.News{ID: uuid.New(), Title: draft.Title, Content: draft.Content, Slug: "slug"}
	f.news = append(f.news, n)
	return &n, nil
}

func (f *fakeGateway) DeleteNews(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.news {
		if f.news[i].ID == id {
			f.news = append(f.news[:i], f.news[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return gateway.ErrNotFound
}

// testEnv bundles the handler groups over the fake gateway.
type testEnv struct {
	GW     *fakeGateway
	Guard  *session.Guard
	Public *Public
	Auth   *Auth
	Admin  *Admin
}

// newTestEnv builds handler groups over a fresh fake gateway and an
// in-memory session guard.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	guard, err := session.NewGuard(session.NewMemoryKV(), "admin", "secret")
	if err != nil {
		t.Fatalf("session.NewGuard: %v", err)
	}

	gw := &fakeGateway{}
	return &testEnv{
		GW:     gw,
		Guard:  guard,
		Public: NewPublic(renderer, gw),
		Auth:   NewAuth(renderer, guard),
		Admin:  NewAdmin(renderer, gw),
	}
}

// withURLParam attaches a chi route parameter to the request context, as
// the router would.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// formRequest builds a POST request with an urlencoded body.
func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
