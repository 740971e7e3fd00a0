// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides the embedded static assets served at /static/. In
// development, templates pull Tailwind from the CDN instead; the compiled
// stylesheet here is what production deployments use.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree. Docker builds compile
// the Tailwind stylesheet into static/site.css before building the binary.
//
//go:embed all:static
var StaticFS embed.FS
