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
)

// BookingRequest carries the fields a visitor submits from the booking form.
type BookingRequest struct {
	FullName    string
	Phone       string
	Email       string
	BookingDate string // yyyy-mm-dd as sent by the date input
	Notes       string
}

// Bookings returns all booking requests, newest first.
func (g *Gateway) Bookings(ctx context.Context) ([]models.Booking, error) {
	if g.bookings == nil {
		return nil, ErrUnavailable
	}
	return g.bookings.List()
}

// CreateBooking validates and stores a visitor booking request. Invalid
// input returns ErrRejected with the failing field named.
func (g *Gateway) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	if g.bookings == nil {
		return nil, ErrUnavailable
	}

	b, err := req.toModel()
	if err != nil {
		return nil, err
	}

	created, err := g.bookings.Create(b)
	if err != nil {
		return nil, err
	}

	g.feed.Publish(ctx, notify.KindBookings)
	return created, nil
}

// FinishBooking flags a booking as handled. The flag never moves back.
func (g *Gateway) FinishBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	if g.bookings == nil {
		return nil, ErrUnavailable
	}

	b, err := g.bookings.MarkFinished(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	g.feed.Publish(ctx, notify.KindBookings)
	return b, nil
}

// toModel validates the raw form input and builds a booking model.
func (req BookingRequest) toModel() (*models.Booking, error) {
	name := strings.TrimSpace(req.FullName)
	phone := strings.TrimSpace(req.Phone)
	email := strings.TrimSpace(req.Email)

	if name == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrRejected)
	}
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrRejected)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrRejected)
	}

	date, err := models.ParseBookingDate(req.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: valid booking date is required", ErrRejected)
	}

	b := &models.Booking{
		FullName:    name,
		Phone:       phone,
		Email:       email,
		BookingDate: date,
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		b.Notes = &notes
	}
	return b, nil
}
