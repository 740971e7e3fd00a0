// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mcfolio/internal/models"
	"mcfolio/internal/notify"
	"mcfolio/internal/slug"
)

// NewsDraft carries the fields an admin submits when publishing an article.
type NewsDraft struct {
	Title        string
	Content      string
	ThumbnailURL string
}

// News returns all articles, newest first.
func (g *Gateway) News(ctx context.Context) ([]models.News, error) {
	if g.news == nil {
		return nil, ErrUnavailable
	}
	return g.news.List()
}

// LatestNews returns the most recent articles up to limit.
func (g *Gateway) LatestNews(ctx context.Context, limit int) ([]models.News, error) {
	if g.news == nil {
		return nil, ErrUnavailable
	}
	return g.news.Latest(limit)
}

// NewsBySlug returns the article behind a permalink.
func (g *Gateway) NewsBySlug(ctx context.Context, s string) (*models.News, error) {
	if g.news == nil {
		return nil, ErrUnavailable
	}
	n, err := g.news.FindBySlug(s)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotFound
	}
	return n, nil
}

// CreateNews validates a draft, derives a unique slug from the title and
// stores the article.
func (g *Gateway) CreateNews(ctx context.Context, draft NewsDraft) (*models.News, error) {
	if g.news == nil {
		return nil, ErrUnavailable
	}

	title := strings.TrimSpace(draft.Title)
	content := strings.TrimSpace(draft.Content)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrRejected)
	}
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrRejected)
	}

	s, err := slug.Unique(title, g.news.SlugExists)
	if err != nil {
		return nil, fmt.Errorf("derive slug: %w", err)
	}

	n := &models.News{Title: title, Slug: s, Content: content}
	if thumb := strings.TrimSpace(draft.ThumbnailURL); thumb != "" {
		n.ThumbnailURL = &thumb
	}

	created, err := g.news.Create(n)
	if err != nil {
		return nil, err
	}

	g.feed.Publish(ctx, notify.KindNews)
	return created, nil
}

// DeleteNews removes an article and, best-effort, its thumbnail blob.
func (g *Gateway) DeleteNews(ctx context.Context, id uuid.UUID) error {
	if g.news == nil {
		return ErrUnavailable
	}

	n, err := g.news.FindByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotFound
	}

	if n.ThumbnailURL != nil {
		g.removeBlob(ctx, *n.ThumbnailURL)
	}

	if _, err := g.news.Delete(id); err != nil {
		return err
	}

	g.feed.Publish(ctx, notify.KindNews)
	return nil
}
