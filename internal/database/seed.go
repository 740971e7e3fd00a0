// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: a handful of
// gallery images per category plus a couple of news articles, so the public
// pages have something to show on a fresh install. External image URLs are
// fine here — deleting seeded media leaves the blob untouched.
func Seed(db *sql.DB) error {
	// Skip when the gallery already has content.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM media").Scan(&count); err != nil {
		return fmt.Errorf("seed check media: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	seedMedia := []struct {
		url      string
		category string
		caption  string
	}{
		{"https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?q=80&w=1770&auto=format&fit=crop", "TV Host", "Live broadcast"},
		{"https://images.unsplash.com/photo-1475721027760-f7560cb6e7e8?q=80&w=1770&auto=format&fit=crop", "Event Master", "On stage"},
		{"https://images.unsplash.com/photo-1511578314322-379afb476865?q=80&w=1769&auto=format&fit=crop", "Conference Speaker", "Keynote session"},
		{"https://images.unsplash.com/photo-1531058020387-3be344556be6?q=80&w=1770&auto=format&fit=crop", "Team Building", "Outdoor games"},
		{"https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?q=80&w=1974&auto=format&fit=crop", "Music Fest", "Festival night"},
	}
	for _, m := range seedMedia {
		_, err := db.Exec(`
			INSERT INTO media (url, type, category, caption)
			VALUES ($1, 'image', $2, $3)
		`, m.url, m.category, m.caption)
		if err != nil {
			return fmt.Errorf("seed insert media: %w", err)
		}
	}

	seedNews := []struct {
		title, slug, content string
		thumb                string
	}{
		{
			title:   "Đêm gala chào năm mới",
			slug:    "dem-gala-chao-nam-moi",
			content: "Một đêm gala đáng nhớ với hàng nghìn khán giả.\n\nCảm ơn tất cả mọi người đã đồng hành!",
			thumb:   "https://images.unsplash.com/photo-1516280440614-6697288d5d38?q=80&w=2070&auto=format&fit=crop",
		},
		{
			title:   "Behind the scenes: a TV season wrap",
			slug:    "behind-the-scenes-a-tv-season-wrap",
			content: "Wrapping up another television season. Here is what went on behind the cameras.",
			thumb:   "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?q=80&w=1974&auto=format&fit=crop",
		},
	}
	for _, n := range seedNews {
		_, err := db.Exec(`
			INSERT INTO news (title, slug, content, thumbnail_url)
			VALUES ($1, $2, $3, $4)
		`, n.title, n.slug, n.content, n.thumb)
		if err != nil {
			return fmt.Errorf("seed insert news: %w", err)
		}
	}

	slog.Info("database seeded with development content",
		"media", len(seedMedia),
		"news", len(seedNews),
	)

	return nil
}
