// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gateway

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"mcfolio/internal/imaging"
	"mcfolio/internal/models"
	"mcfolio/internal/notify"
	"mcfolio/internal/storage"
	"mcfolio/internal/taxonomy"
)

// MediaUpload carries an admin upload: the file bytes plus optional
// category label and caption.
type MediaUpload struct {
	Filename    string
	ContentType string
	Data        []byte
	Category    string // taxonomy label, empty for uncategorized
	Caption     string
}

// Media returns all gallery items, newest first.
func (g *Gateway) Media(ctx context.Context) ([]models.Media, error) {
	if g.media == nil {
		return nil, ErrUnavailable
	}
	return g.media.List()
}

// MediaByCategory returns gallery items for one activity category.
func (g *Gateway) MediaByCategory(ctx context.Context, c taxonomy.Category) ([]models.Media, error) {
	if g.media == nil {
		return nil, ErrUnavailable
	}
	return g.media.ListByCategory(c.Label())
}

// UploadMedia stores the file in object storage, generates a thumbnail
// for images, and records the item. If the database insert fails after
// the blobs went up, the blobs are removed again best-effort.
func (g *Gateway) UploadMedia(ctx context.Context, up MediaUpload) (*models.Media, error) {
	if g.media == nil || g.blobs == nil {
		return nil, ErrUnavailable
	}

	kind := models.MediaImage
	switch {
	case strings.HasPrefix(up.ContentType, "image/"):
	case strings.HasPrefix(up.ContentType, "video/"):
		kind = models.MediaVideo
	default:
		return nil, fmt.Errorf("%w: unsupported content type %s", ErrRejected, up.ContentType)
	}
	if len(up.Data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrRejected)
	}
	if up.Category != "" {
		if _, ok := taxonomy.ByLabel(up.Category); !ok {
			return nil, fmt.Errorf("%w: unknown category %q", ErrRejected, up.Category)
		}
	}

	key := storage.ObjectKey(up.Filename, time.Now())
	if err := g.blobs.Upload(ctx, key, up.ContentType, bytes.NewReader(up.Data), int64(len(up.Data))); err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}
	uploaded := []string{key}

	m := &models.Media{
		URL:  g.blobs.FileURL(key),
		Kind: kind,
	}
	if up.Category != "" {
		m.Category = &up.Category
	}
	if caption := strings.TrimSpace(up.Caption); caption != "" {
		m.Caption = &caption
	}

	// Thumbnail generation is best-effort: a photo the decoder chokes on
	// still goes into the gallery full-size.
	if kind == models.MediaImage {
		if thumb, err := imaging.Thumbnail(up.Data); err == nil {
			thumbKey := "thumbs/" + key
			if err := g.blobs.Upload(ctx, thumbKey, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); err == nil {
				thumbURL := g.blobs.FileURL(thumbKey)
				m.ThumbURL = &thumbURL
				uploaded = append(uploaded, thumbKey)
			} else {
				slog.Warn("thumbnail upload failed", "key", thumbKey, "error", err)
			}
		} else {
			slog.Warn("thumbnail generation failed", "filename", up.Filename, "error", err)
		}
	}

	created, err := g.media.Create(m)
	if err != nil {
		// Roll the blobs back so failed inserts do not leak storage.
		for _, k := range uploaded {
			if derr := g.blobs.Delete(ctx, k); derr != nil {
				slog.Warn("orphaned blob after failed insert", "key", k, "error", derr)
			}
		}
		return nil, err
	}

	g.feed.Publish(ctx, notify.KindMedia)
	return created, nil
}

// DeleteMedia removes a gallery item. Blobs go first, best-effort: a
// storage failure is logged and the record is removed anyway, and URLs
// pointing outside our storage are left alone.
func (g *Gateway) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	if g.media == nil {
		return ErrUnavailable
	}

	m, err := g.media.FindByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrNotFound
	}

	g.removeBlob(ctx, m.URL)
	if m.ThumbURL != nil {
		g.removeBlob(ctx, *m.ThumbURL)
	}

	if _, err := g.media.Delete(id); err != nil {
		return err
	}

	g.feed.Publish(ctx, notify.KindMedia)
	return nil
}

// removeBlob deletes the object behind rawURL when it lives in our
// storage. Foreign URLs (seeded stock photos, hotlinks) are skipped.
func (g *Gateway) removeBlob(ctx context.Context, rawURL string) {
	if g.blobs == nil {
		return
	}
	key, ok := g.blobs.ExtractKey(rawURL)
	if !ok {
		return
	}
	if err := g.blobs.Delete(ctx, key); err != nil {
		slog.Warn("blob delete failed, object orphaned", "key", key, "error", err)
	}
}
