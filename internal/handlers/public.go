// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mcfolio/internal/gateway"
	"mcfolio/internal/i18n"
	"mcfolio/internal/middleware"
	"mcfolio/internal/models"
	"mcfolio/internal/render"
	"mcfolio/internal/taxonomy"
	"mcfolio/internal/view"
)

// PublicGateway is the slice of the content gateway the public handlers use.
type PublicGateway interface {
	view.Content
	CreateBooking(ctx context.Context, req gateway.BookingRequest) (*models.Booking, error)
}

// Public groups handlers for the visitor-facing site.
type Public struct {
	renderer *render.Renderer
	gw       PublicGateway
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, gw PublicGateway) *Public {
	return &Public{renderer: renderer, gw: gw}
}

// tr returns the request's translation resolver, falling back to a
// detached default-language resolver so handlers never nil-check it.
func tr(r *http.Request) *i18n.Resolver {
	if res := middleware.ResolverFromCtx(r.Context()); res != nil {
		return res
	}
	return i18n.NewResolver(nil)
}

// Home renders the landing page: hero, activity cards and latest news.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	res := tr(r)
	page := view.Home(r.Context(), p.gw, res)
	p.renderer.Page(w, r, "public/home", &render.PageData{
		Title:   res.T("home.title"),
		Section: "home",
		Data:    page,
	})
}

// About renders the static biography page.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	res := tr(r)
	p.renderer.Page(w, r, "public/about", &render.PageData{
		Title:   res.T("about.title"),
		Section: "about",
	})
}

// Gallery renders the media gallery with its category filter. The filter
// is selected with the ?category= query parameter.
func (p *Public) Gallery(w http.ResponseWriter, r *http.Request) {
	res := tr(r)
	page := view.Gallery(r.Context(), p.gw, res, r.URL.Query().Get("category"))
	p.renderer.Page(w, r, "public/gallery", &render.PageData{
		Title:   res.T("gallery.title"),
		Section: "gallery",
		Data:    page,
	})
}

// Activity renders one themed activity category page. Unknown category
// identifiers redirect home instead of rendering a default theme.
func (p *Public) Activity(w http.ResponseWriter, r *http.Request) {
	cat, ok := taxonomy.Parse(chi.URLParam(r, "category"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	slide, _ := strconv.Atoi(r.URL.Query().Get("slide"))
	page := view.Activity(r.Context(), p.gw, tr(r), cat, slide)
	p.renderer.Page(w, r, "public/activity", &render.PageData{
		Title:   page.Title,
		Section: "activity",
		Data:    page,
	})
}

// News renders the article listing.
func (p *Public) News(w http.ResponseWriter, r *http.Request) {
	res := tr(r)
	page := view.NewsList(r.Context(), p.gw)
	p.renderer.Page(w, r, "public/news", &render.PageData{
		Title:   res.T("news.title"),
		Section: "news",
		Data:    page,
	})
}

// NewsArticle renders a single article permalink.
func (p *Public) NewsArticle(w http.ResponseWriter, r *http.Request) {
	detail, err := view.NewsArticle(r.Context(), p.gw, chi.URLParam(r, "slug"))
	if errors.Is(err, gateway.ErrNotFound) {
		p.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("news article load failed", "slug", chi.URLParam(r, "slug"), "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.renderer.Page(w, r, "public/news_detail", &render.PageData{
		Title:   detail.Article.Title,
		Section: "news",
		Data:    detail,
	})
}

// BookingPage renders the booking form.
func (p *Public) BookingPage(w http.ResponseWriter, r *http.Request) {
	res := tr(r)
	p.renderer.Page(w, r, "public/booking", &render.PageData{
		Title:   res.T("booking.title"),
		Section: "booking",
	})
}

// BookingSubmit processes the booking form. Validation failures re-render
// the form with the submitted values so the visitor can correct them.
func (p *Public) BookingSubmit(w http.ResponseWriter, r *http.Request) {
	res := tr(r)
	req := gateway.BookingRequest{
		FullName:    r.FormValue("full_name"),
		Phone:       r.FormValue("phone"),
		Email:       r.FormValue("email"),
		BookingDate: r.FormValue("booking_date"),
		Notes:       r.FormValue("notes"),
	}

	_, err := p.gw.CreateBooking(r.Context(), req)
	switch {
	case err == nil:
		p.renderer.Page(w, r, "public/booking", &render.PageData{
			Title:   res.T("booking.title"),
			Section: "booking",
			Data:    map[string]any{"Success": true},
		})
	case errors.Is(err, gateway.ErrRejected):
		w.WriteHeader(http.StatusUnprocessableEntity)
		p.renderer.Page(w, r, "public/booking", &render.PageData{
			Title:   res.T("booking.title"),
			Section: "booking",
			Data:    map[string]any{"Error": res.T("booking.error"), "Form": req},
		})
	case errors.Is(err, gateway.ErrUnavailable):
		w.WriteHeader(http.StatusServiceUnavailable)
		p.renderer.Page(w, r, "public/booking", &render.PageData{
			Title:   res.T("booking.title"),
			Section: "booking",
			Data:    map[string]any{"Error": res.T("booking.error"), "Form": req},
		})
	default:
		slog.Error("booking create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// SetLanguage switches the visitor's language and sends them back where
// they came from.
func (p *Public) SetLanguage(w http.ResponseWriter, r *http.Request) {
	if res := middleware.ResolverFromCtx(r.Context()); res != nil {
		res.SetLang(i18n.Language(chi.URLParam(r, "lang")))
	}

	ref := r.Referer()
	if ref == "" {
		ref = "/"
	}
	http.Redirect(w, r, ref, http.StatusSeeOther)
}

// NotFound renders the localized 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	p.renderer.Page(w, r, "public/not_found", &render.PageData{
		Title: "404",
	})
}
