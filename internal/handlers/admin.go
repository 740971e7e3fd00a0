// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mcfolio/internal/gateway"
	"mcfolio/internal/models"
	"mcfolio/internal/render"
	"mcfolio/internal/view"
)

// maxUploadSize is the maximum allowed file upload size (50 MB).
const maxUploadSize = 50 << 20

// AdminGateway is the slice of the content gateway the dashboard uses.
type AdminGateway interface {
	view.AdminContent
	FinishBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	UploadMedia(ctx context.Context, up gateway.MediaUpload) (*models.Media, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) error
	CreateNews(ctx context.Context, draft gateway.NewsDraft) (*models.News, error)
	DeleteNews(ctx context.Context, id uuid.UUID) error
}

// Admin groups the dashboard handlers. All routes behind it require a
// live session.
type Admin struct {
	renderer *render.Renderer
	gw       AdminGateway
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(renderer *render.Renderer, gw AdminGateway) *Admin {
	return &Admin{renderer: renderer, gw: gw}
}

// Dashboard renders the admin dashboard with the requested tab active.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	d := view.AdminDashboard(r.Context(), a.gw, r.URL.Query().Get("tab"))
	a.renderer.Page(w, r, "admin/dashboard", &render.PageData{
		Title:    "Dashboard",
		Section:  d.Tab,
		LoggedIn: true,
		Data:     d,
	})
}

// FinishBooking flags a booking as handled and returns to the bookings tab.
func (a *Admin) FinishBooking(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid booking id", http.StatusBadRequest)
		return
	}

	if _, err := a.gw.FinishBooking(r.Context(), id); err != nil {
		a.mutationError(w, "finish booking", err)
		return
	}
	http.Redirect(w, r, "/admin?tab=bookings", http.StatusSeeOther)
}

// UploadMedia accepts a multipart upload for the gallery.
func (a *Admin) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "read upload", http.StatusBadRequest)
		return
	}

	_, err = a.gw.UploadMedia(r.Context(), gateway.MediaUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		Category:    r.FormValue("category"),
		Caption:     r.FormValue("caption"),
	})
	if err != nil {
		a.mutationError(w, "upload media", err)
		return
	}
	http.Redirect(w, r, "/admin?tab=media", http.StatusSeeOther)
}

// DeleteMedia removes a gallery item.
func (a *Admin) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid media id", http.StatusBadRequest)
		return
	}

	if err := a.gw.DeleteMedia(r.Context(), id); err != nil {
		a.mutationError(w, "delete media", err)
		return
	}
	http.Redirect(w, r, "/admin?tab=media", http.StatusSeeOther)
}

// CreateNews publishes a new article.
func (a *Admin) CreateNews(w http.ResponseWriter, r *http.Request) {
	_, err := a.gw.CreateNews(r.Context(), gateway.NewsDraft{
		Title:        r.FormValue("title"),
		Content:      r.FormValue("content"),
		ThumbnailURL: r.FormValue("thumbnail_url"),
	})
	if err != nil {
		a.mutationError(w, "create news", err)
		return
	}
	http.Redirect(w, r, "/admin?tab=news", http.StatusSeeOther)
}

// DeleteNews removes an article.
func (a *Admin) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid news id", http.StatusBadRequest)
		return
	}

	if err := a.gw.DeleteNews(r.Context(), id); err != nil {
		a.mutationError(w, "delete news", err)
		return
	}
	http.Redirect(w, r, "/admin?tab=news", http.StatusSeeOther)
}

// mutationError maps gateway errors onto HTTP statuses for admin actions.
func (a *Admin) mutationError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, gateway.ErrRejected):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, gateway.ErrUnavailable):
		http.Error(w, "content store unavailable", http.StatusServiceUnavailable)
	default:
		slog.Error(action+" failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
