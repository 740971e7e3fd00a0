// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n resolves user-visible chrome text against the site's two
// language tables. Content stored in the database (titles, captions, article
// bodies) renders as authored and does not pass through the resolver.
package i18n

// Language is one of the site's two supported languages.
type Language string

const (
	Vietnamese Language = "vi"
	English    Language = "en"
)

// DefaultLanguage is the language used when no valid preference is stored.
const DefaultLanguage = Vietnamese

// prefKey is the key under which the preference is persisted in the Store.
const prefKey = "language"

// Store abstracts the persistence of the language preference. The HTTP layer
// adapts this over a cookie; tests use an in-memory map.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// ParseLanguage validates a raw preference value. Anything outside the fixed
// enumeration falls back to the default.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case Vietnamese, English:
		return Language(s)
	}
	return DefaultLanguage
}

// Resolver translates chrome text for one active language and persists
// language switches through its store.
type Resolver struct {
	store Store
	lang  Language
}

// NewResolver loads the persisted language preference from the store,
// falling back to the default when none is stored or the stored value is
// outside the valid enumeration.
func NewResolver(store Store) *Resolver {
	r := &Resolver{store: store, lang: DefaultLanguage}
	if store != nil {
		if v, ok := store.Get(prefKey); ok {
			r.lang = ParseLanguage(v)
		}
	}
	return r
}

// Lang returns the active language.
func (r *Resolver) Lang() Language {
	return r.lang
}

// SetLang switches the active language and persists the choice.
func (r *Resolver) SetLang(lang Language) {
	r.lang = ParseLanguage(string(lang))
	if r.store != nil {
		r.store.Set(prefKey, string(r.lang))
	}
}

// T resolves a key against the active language's table. Missing keys return
// the key itself verbatim so a template never renders blank text.
func (r *Resolver) T(key string) string {
	if v, ok := tables[r.lang][key]; ok {
		return v
	}
	return key
}

// MapStore is a Store backed by a plain map, for tests and one-shot renders.
type MapStore map[string]string

func (m MapStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapStore) Set(key, value string) {
	m[key] = value
}
