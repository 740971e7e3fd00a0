// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus enumerates the lifecycle states of a booking request.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is an event booking request submitted from the public form.
// The identifier and creation timestamp are assigned by the database;
// is_finished is the only field that changes after creation, and it only
// moves forward (false to true).
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	FullName    string        `json:"full_name"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	BookingDate time.Time     `json:"booking_date"`
	Notes       *string       `json:"notes,omitempty"`
	Status      BookingStatus `json:"status"`
	IsFinished  bool          `json:"is_finished"`
	CreatedAt   time.Time     `json:"created_at"`
}

// bookingDateLayout matches the wire format of HTML date inputs.
const bookingDateLayout = "2006-01-02"

// ParseBookingDate parses a yyyy-mm-dd form value into a date.
func ParseBookingDate(s string) (time.Time, error) {
	return time.Parse(bookingDateLayout, s)
}

// FormatBookingDate renders a booking date back into yyyy-mm-dd.
func FormatBookingDate(t time.Time) string {
	return t.Format(bookingDateLayout)
}

// NotesSummary returns the notes truncated for the admin table, or a
// placeholder when none were given. Storage is never truncated.
func (b *Booking) NotesSummary(max int) string {
	if b.Notes == nil || *b.Notes == "" {
		return "No notes"
	}
	return truncateRunes(*b.Notes, max)
}
