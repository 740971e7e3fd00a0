// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package view builds per-request page models from gateway data. Each
// builder degrades instead of failing: a broken backend produces a page
// with an error banner, never a blank 500.
package view

import (
	"errors"

	"mcfolio/internal/gateway"
)

// State carries a list of items together with the error, if any, that
// occurred loading them. Templates branch on the three predicates below.
type State[T any] struct {
	Items []T
	Err   error
}

// Unavailable reports that the content store is not configured or not
// reachable. Distinct from an empty list.
func (s State[T]) Unavailable() bool {
	return errors.Is(s.Err, gateway.ErrUnavailable)
}

// Failed reports any load error, including unavailability.
func (s State[T]) Failed() bool {
	return s.Err != nil
}

// Empty reports a successful load that returned nothing.
func (s State[T]) Empty() bool {
	return s.Err == nil && len(s.Items) == 0
}

// loaded wraps a gateway list result as a State.
func loaded[T any](items []T, err error) State[T] {
	return State[T]{Items: items, Err: err}
}
