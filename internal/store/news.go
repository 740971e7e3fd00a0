// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"mcfolio/internal/models"
)

// NewsStore handles all news article database operations.
type NewsStore struct {
	db *sql.DB
}

// NewNewsStore creates a new NewsStore with the given database connection.
func NewNewsStore(db *sql.DB) *NewsStore {
	return &NewsStore{db: db}
}

// newsColumns lists the columns selected in news queries.
const newsColumns = `id, title, slug, content, thumbnail_url, created_at`

// scanNews scans a news row from the result set.
func scanNews(scanner interface{ Scan(...any) error }) (*models.News, error) {
	var n models.News
	err := scanner.Scan(
		&n.ID, &n.Title, &n.Slug, &n.Content, &n.ThumbnailURL, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a new article and returns it with the generated ID.
func (s *NewsStore) Create(n *models.News) (*models.News, error) {
	err := s.db.QueryRow(`
		INSERT INTO news (title, slug, content, thumbnail_url)
		VALUES ($1, $2, $3, $4)
		RETURNING `+newsColumns,
		n.Title, n.Slug, n.Content, n.ThumbnailURL,
	).Scan(
		&n.ID, &n.Title, &n.Slug, &n.Content, &n.ThumbnailURL, &n.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create news: %w", err)
	}
	return n, nil
}

// FindByID retrieves a single article by its UUID.
func (s *NewsStore) FindByID(id uuid.UUID) (*models.News, error) {
	row := s.db.QueryRow(`SELECT `+newsColumns+` FROM news WHERE id = $1`, id)
	n, err := scanNews(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by id: %w", err)
	}
	return n, nil
}

// FindBySlug retrieves a single article by its URL slug.
func (s *NewsStore) FindBySlug(slug string) (*models.News, error) {
	row := s.db.QueryRow(`SELECT `+newsColumns+` FROM news WHERE slug = $1`, slug)
	n, err := scanNews(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by slug: %w", err)
	}
	return n, nil
}

// SlugExists reports whether an article already uses the given slug.
func (s *NewsStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM news WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check news slug: %w", err)
	}
	return exists, nil
}

// List returns all articles ordered newest-first.
func (s *NewsStore) List() ([]models.News, error) {
	rows, err := s.db.Query(`
		SELECT ` + newsColumns + `
		FROM news
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	var items []models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

// Latest returns the most recent articles up to limit.
func (s *NewsStore) Latest(limit int) ([]models.News, error) {
	rows, err := s.db.Query(`
		SELECT `+newsColumns+`
		FROM news
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("latest news: %w", err)
	}
	defer rows.Close()

	var items []models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

// Delete removes an article and returns it so the caller can clean up
// the thumbnail blob. Returns nil when the article does not exist.
func (s *NewsStore) Delete(id uuid.UUID) (*models.News, error) {
	row := s.db.QueryRow(`
		DELETE FROM news WHERE id = $1
		RETURNING `+newsColumns, id)
	n, err := scanNews(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete news: %w", err)
	}
	return n, nil
}
