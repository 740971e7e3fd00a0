// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the PostgreSQL persistence layer. Each record
// kind gets its own store type wrapping a shared *sql.DB pool.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"mcfolio/internal/models"
)

// BookingStore handles all booking-related database operations.
type BookingStore struct {
	db *sql.DB
}

// NewBookingStore creates a new BookingStore with the given database connection.
func NewBookingStore(db *sql.DB) *BookingStore {
	return &BookingStore{db: db}
}

// bookingColumns lists the columns selected in booking queries.
const bookingColumns = `id, full_name, phone, email, booking_date, notes,
	status, is_finished, created_at`

// scanBooking scans a booking row from the result set.
func scanBooking(scanner interface{ Scan(...any) error }) (*models.Booking, error) {
	var b models.Booking
	err := scanner.Scan(
		&b.ID, &b.FullName, &b.Phone, &b.Email, &b.BookingDate, &b.Notes,
		&b.Status, &b.IsFinished, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new booking request and returns it with the generated ID.
// New bookings always start out pending and unfinished.
func (s *BookingStore) Create(b *models.Booking) (*models.Booking, error) {
	err := s.db.QueryRow(`
		INSERT INTO bookings (full_name, phone, email, booking_date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+bookingColumns,
		b.FullName, b.Phone, b.Email, b.BookingDate, b.Notes,
	).Scan(
		&b.ID, &b.FullName, &b.Phone, &b.Email, &b.BookingDate, &b.Notes,
		&b.Status, &b.IsFinished, &b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return b, nil
}

// List returns all bookings ordered newest-first.
func (s *BookingStore) List() ([]models.Booking, error) {
	rows, err := s.db.Query(`
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var items []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// MarkFinished flags a booking as handled. The flag only ever moves one
// way; repeated calls are harmless. Returns the updated booking, or nil
// when no booking with that ID exists.
func (s *BookingStore) MarkFinished(id uuid.UUID) (*models.Booking, error) {
	row := s.db.QueryRow(`
		UPDATE bookings SET is_finished = TRUE WHERE id = $1
		RETURNING `+bookingColumns, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mark booking finished: %w", err)
	}
	return b, nil
}
