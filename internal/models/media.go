// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaKind distinguishes images from videos in the media library.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Media is one gallery item. The URL points either at a blob in the site's
// object storage or at an external host; Category carries the storage label
// from the taxonomy (nil = uncategorized). Media rows are immutable once
// created — there is no edit operation, only delete.
type Media struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Kind      MediaKind `json:"type"`
	Category  *string   `json:"category,omitempty"`
	Caption   *string   `json:"caption,omitempty"`
	ThumbURL  *string   `json:"thumb_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsImage reports whether the item renders as an <img>.
func (m *Media) IsImage() bool {
	return m.Kind == MediaImage
}

// CategoryLabel returns the stored category label, or "Uncategorized".
func (m *Media) CategoryLabel() string {
	if m.Category == nil || *m.Category == "" {
		return "Uncategorized"
	}
	return *m.Category
}

// PreviewURL returns the thumbnail when one exists, else the full URL.
func (m *Media) PreviewURL() string {
	if m.ThumbURL != nil && *m.ThumbURL != "" {
		return *m.ThumbURL
	}
	return m.URL
}
