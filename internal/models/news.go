// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// excerptLen is the maximum length of a news excerpt shown on list pages.
const excerptLen = 150

// News is a published article. Articles are created and deleted by the
// admin, never edited; the full content stays intact in storage and is
// only shortened at render time.
type News struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Content      string    `json:"content"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Excerpt returns the content shortened to the list-page length with a
// trailing ellipsis. Content at or under the limit is returned unchanged.
func (n *News) Excerpt() string {
	return truncateRunes(n.Content, excerptLen)
}

// truncateRunes shortens s to at most max runes, appending "..." when
// anything was cut. Counting runes keeps multi-byte Vietnamese text intact.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
