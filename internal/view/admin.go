// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"context"
	"sort"

	"mcfolio/internal/models"
	"mcfolio/internal/taxonomy"
)

// Dashboard tabs.
const (
	TabBookings = "bookings"
	TabMedia    = "media"
	TabNews     = "news"
)

// uncategorizedLabel groups media without a category label.
const uncategorizedLabel = "Uncategorized"

// AdminContent is the slice of the gateway the dashboard reads from.
type AdminContent interface {
	Bookings(ctx context.Context) ([]models.Booking, error)
	Media(ctx context.Context) ([]models.Media, error)
	News(ctx context.Context) ([]models.News, error)
}

// MediaGroup is one category section on the media tab.
type MediaGroup struct {
	Label string
	Items []models.Media
}

// Dashboard backs the admin area. Only the active tab's data is loaded.
type Dashboard struct {
	Tab         string
	Bookings    State[models.Booking]
	MediaGroups []MediaGroup
	MediaErr    error
	News        State[models.News]
}

// ParseTab normalizes the requested tab name, defaulting to bookings.
func ParseTab(s string) string {
	switch s {
	case TabMedia, TabNews:
		return s
	default:
		return TabBookings
	}
}

// AdminDashboard assembles the dashboard model for the given tab.
func AdminDashboard(ctx context.Context, c AdminContent, tab string) Dashboard {
	d := Dashboard{Tab: ParseTab(tab)}

	switch d.Tab {
	case TabBookings:
		d.Bookings = loaded(c.Bookings(ctx))
	case TabMedia:
		items, err := c.Media(ctx)
		d.MediaErr = err
		d.MediaGroups = GroupMedia(items)
	case TabNews:
		d.News = loaded(c.News(ctx))
	}
	return d
}

// MediaFailed reports a media tab load failure. Mirrors State's
// predicates for the grouped layout.
func (d Dashboard) MediaFailed() bool {
	return d.MediaErr != nil
}

// GroupMedia buckets media by category label in taxonomy order, with
// uncategorized items last. Empty groups are dropped. Order inside a
// group follows the input (newest first from the store).
func GroupMedia(items []models.Media) []MediaGroup {
	byLabel := make(map[string][]models.Media)
	for _, m := range items {
		label := uncategorizedLabel
		if m.Category != nil && *m.Category != "" {
			label = *m.Category
		}
		byLabel[label] = append(byLabel[label], m)
	}

	var groups []MediaGroup
	for _, c := range taxonomy.All() {
		if bucket := byLabel[c.Label()]; len(bucket) > 0 {
			groups = append(groups, MediaGroup{Label: c.Label(), Items: bucket})
			delete(byLabel, c.Label())
		}
	}
	// Labels outside the taxonomy (legacy rows) keep their own group,
	// sorted for a stable page.
	var legacy []string
	for label := range byLabel {
		if label != uncategorizedLabel {
			legacy = append(legacy, label)
		}
	}
	sort.Strings(legacy)
	for _, label := range legacy {
		groups = append(groups, MediaGroup{Label: label, Items: byLabel[label]})
	}
	if bucket := byLabel[uncategorizedLabel]; len(bucket) > 0 {
		groups = append(groups, MediaGroup{Label: uncategorizedLabel, Items: bucket})
	}
	return groups
}
