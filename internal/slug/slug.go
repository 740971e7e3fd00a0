// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary
// strings, including Vietnamese titles with diacritics.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)

	// stripMarks decomposes accented letters and drops the combining marks.
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Đêm gala chào năm mới" → "dem-gala-chao-nam-moi"
func Generate(s string) string {
	result := strings.TrimSpace(s)

	// Fold diacritics first so Vietnamese titles survive the ASCII filter.
	// đ is a standalone letter, not a combining mark, so handle it directly.
	result = strings.NewReplacer("đ", "d", "Đ", "D").Replace(result)
	if folded, _, err := transform.String(stripMarks, result); err == nil {
		result = folded
	}

	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// Unique returns a slug for title that exists reports false for. When the
// base slug is taken, numeric suffixes are tried (-2, -3, ...).
func Unique(title string, exists func(slug string) (bool, error)) (string, error) {
	base := Generate(title)
	if base == "" {
		base = "untitled"
	}

	taken, err := exists(base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}
