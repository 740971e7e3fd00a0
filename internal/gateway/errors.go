// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gateway

import "errors"

var (
	// ErrUnavailable means the backing store is not configured or not
	// reachable. Callers must treat this differently from an empty
	// result: the data may exist, we just cannot see it right now.
	ErrUnavailable = errors.New("content store unavailable")

	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrRejected means the input failed validation and was not stored.
	ErrRejected = errors.New("request rejected")
)
