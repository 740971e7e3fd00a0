// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package taxonomy defines the fixed set of activity categories the site is
// organized around, together with each category's visual theme and the label
// stored on media records. The registry is pure data: no I/O, no mutation.
package taxonomy

// Category identifies one activity in the fixed taxonomy. The zero value is
// not a valid category; use Parse to obtain one from a route parameter.
type Category string

const (
	TVHost            Category = "tv-host"
	EventSpeaker      Category = "event-speaker"
	ConferenceSpeaker Category = "conference-speaker"
	TeamBuilding      Category = "team-building"
	MusicFest         Category = "music-fest"
)

// Layout selects the rendering strategy for a category's media set.
type Layout string

const (
	LayoutGrid     Layout = "grid"
	LayoutMasonry  Layout = "masonry"
	LayoutCarousel Layout = "carousel"
	LayoutBoldGrid Layout = "bold-grid"
)

// Theme holds the visual parameters applied to a category's pages.
type Theme struct {
	Vibe       string
	Background string
	TextColor  string
	Accent     string
	Layout     Layout
	HeaderFont string // "serif" or "sans"
}

// categories lists every category in display order. Home cards, gallery
// filter chips, and admin category dropdowns all iterate this slice.
var categories = [...]Category{
	TVHost,
	EventSpeaker,
	ConferenceSpeaker,
	TeamBuilding,
	MusicFest,
}

// All returns the categories in display order.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// Parse maps a route parameter to a Category. Unknown identifiers report
// ok=false; callers redirect rather than rendering a default page.
func Parse(s string) (Category, bool) {
	switch Category(s) {
	case TVHost, EventSpeaker, ConferenceSpeaker, TeamBuilding, MusicFest:
		return Category(s), true
	}
	return "", false
}

// Label returns the human-readable string persisted on media records for
// this category. The mapping is total and bijective with the identifiers.
func (c Category) Label() string {
	switch c {
	case TVHost:
		return "TV Host"
	case EventSpeaker:
		return "Event Master"
	case ConferenceSpeaker:
		return "Conference Speaker"
	case TeamBuilding:
		return "Team Building"
	case MusicFest:
		return "Music Fest"
	}
	return ""
}

// ByLabel is the inverse of Label. Unknown labels report ok=false so that
// filtering on them yields an empty set instead of a default category.
func ByLabel(label string) (Category, bool) {
	for _, c := range categories {
		if c.Label() == label {
			return c, true
		}
	}
	return "", false
}

// Theme returns the visual theme for the category. Unrecognized values fall
// back to the conference-speaker theme so a stale link never crashes a page.
func (c Category) Theme() Theme {
	switch c {
	case TVHost:
		return Theme{
			Vibe:       "Cinematic & Studio",
			Background: "#0D0D0D",
			TextColor:  "#FFFFFF",
			Accent:     "#FFFFFF",
			Layout:     LayoutCarousel,
			HeaderFont: "sans",
		}
	case EventSpeaker:
		return Theme{
			Vibe:       "Professional & Elegant",
			Background: "#F2E9E4",
			TextColor:  "#0D0D0D",
			Accent:     "#403F3D",
			Layout:     LayoutGrid,
			HeaderFont: "serif",
		}
	case TeamBuilding:
		return Theme{
			Vibe:       "Energetic & Colorful",
			Background: "#FFFFFF",
			TextColor:  "#0D0D0D",
			Accent:     "#FFB800",
			Layout:     LayoutMasonry,
			HeaderFont: "sans",
		}
	case MusicFest:
		return Theme{
			Vibe:       "Dark & Hype",
			Background: "#1a1a1a",
			TextColor:  "#FFFFFF",
			Accent:     "#FF00FF",
			Layout:     LayoutBoldGrid,
			HeaderFont: "sans",
		}
	case ConferenceSpeaker:
	}
	return Theme{
		Vibe:       "Professional & Elegant",
		Background: "#F2E9E4",
		TextColor:  "#0D0D0D",
		Accent:     "#403F3D",
		Layout:     LayoutGrid,
		HeaderFont: "serif",
	}
}

// TitleKey returns the i18n key for the category's display title.
func (c Category) TitleKey() string {
	switch c {
	case TVHost:
		return "activity.tvHost"
	case EventSpeaker:
		return "activity.eventMaster"
	case ConferenceSpeaker:
		return "activity.conferenceSpeaker"
	case TeamBuilding:
		return "activity.teamBuilding"
	case MusicFest:
		return "activity.musicEvents"
	}
	return ""
}

// DescKey returns the i18n key for the category's description paragraph.
func (c Category) DescKey() string {
	return c.TitleKey() + "Desc"
}
