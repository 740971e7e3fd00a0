// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package gateway is the single entry point for all content reads and
// writes. It fronts PostgreSQL, object storage and the change feed, and
// degrades gracefully: with no database every operation reports
// ErrUnavailable instead of failing at startup, so the site still serves
// its static pages.
package gateway

import (
	"context"
	"database/sql"
	"io"

	"github.com/google/uuid"

	"mcfolio/internal/models"
	"mcfolio/internal/notify"
	"mcfolio/internal/store"
)

// Blobs is the object storage port the gateway uploads to and deletes
// from. *storage.Client satisfies it.
type Blobs interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	FileURL(key string) string
	ExtractKey(rawURL string) (string, bool)
}

// bookingStore is the slice of store.BookingStore the gateway needs.
type bookingStore interface {
	Create(b *models.Booking) (*models.Booking, error)
	List() ([]models.Booking, error)
	MarkFinished(id uuid.UUID) (*models.Booking, error)
}

type mediaStore interface {
	Create(m *models.Media) (*models.Media, error)
	FindByID(id uuid.UUID) (*models.Media, error)
	List() ([]models.Media, error)
	ListByCategory(category string) ([]models.Media, error)
	Delete(id uuid.UUID) (*models.Media, error)
}

type newsStore interface {
	Create(n *models.News) (*models.News, error)
	FindByID(id uuid.UUID) (*models.News, error)
	FindBySlug(slug string) (*models.News, error)
	SlugExists(slug string) (bool, error)
	List() ([]models.News, error)
	Latest(limit int) ([]models.News, error)
	Delete(id uuid.UUID) (*models.News, error)
}

// Gateway mediates all content access. The zero value is unusable; build
// one with New.
type Gateway struct {
	bookings bookingStore
	media    mediaStore
	news     newsStore
	blobs    Blobs
	feed     *notify.Feed
}

// New wires a gateway over the given backends. db may be nil (store
// unconfigured), blobs may be nil (no object storage) and feed may be
// nil (no change notifications); the gateway handles all three.
func New(db *sql.DB, blobs Blobs, feed *notify.Feed) *Gateway {
	g := &Gateway{blobs: blobs, feed: feed}
	if db != nil {
		g.bookings = store.NewBookingStore(db)
		g.media = store.NewMediaStore(db)
		g.news = store.NewNewsStore(db)
	}
	return g
}

// Available reports whether the backing database is wired in.
func (g *Gateway) Available() bool {
	return g.bookings != nil
}
