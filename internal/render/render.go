// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the admin interface. It supports full-page and HTMX partial rendering,
// automatically detecting the request type via the HX-Request header.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path"
	"strings"

	"mcfolio/internal/i18n"
	"mcfolio/internal/middleware"
	"mcfolio/internal/models"
	"mcfolio/internal/taxonomy"
)

//go:embed templates/public/*.html templates/admin/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active nav item (e.g., "home", "gallery")
	Tr        *i18n.Resolver // Translator for the request's language
	LoggedIn  bool           // Whether an admin session is live
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      any            // Page-specific view model
}

// Lang returns the active language code for the <html lang> attribute.
func (p *PageData) Lang() string {
	if p.Tr == nil {
		return string(i18n.Vietnamese)
	}
	return string(p.Tr.Lang())
}

// T translates a key in the request's language. Safe on a nil resolver so
// templates render in tests without one.
func (p *PageData) T(key string) string {
	if p.Tr == nil {
		return key
	}
	return p.Tr.T(key)
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// standaloneTemplates lists templates that render as full HTML pages
// without their set's base layout.
var standaloneTemplates = map[string]bool{
	"admin/login": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with its set's base layout.
// When devMode is true, templates use CDN-hosted assets; when false,
// they reference compiled local static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "text-white"
				}
				return "text-gray-400 hover:text-white"
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// bookingDate renders a booking date as yyyy-mm-dd.
			"bookingDate": models.FormatBookingDate,
			// add is used for 1-based slide counters.
			"add": func(a, b int) int {
				return a + b
			},
			// categoryLabels feeds the admin upload form's dropdown.
			"categoryLabels": func() []string {
				cats := taxonomy.All()
				labels := make([]string, len(cats))
				for i, c := range cats {
					labels[i] = c.Label()
				}
				return labels
			},
		},
	}

	for _, set := range []string{"public", "admin"} {
		entries, err := templateFS.ReadDir("templates/" + set)
		if err != nil {
			return nil, fmt.Errorf("read embedded templates: %w", err)
		}

		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || name == "base.html" {
				continue
			}

			// Key templates by set and bare name, e.g. "admin/login".
			tmplName := set + "/" + strings.TrimSuffix(name, ".html")

			var tmpl *template.Template
			var parseErr error
			if standaloneTemplates[tmplName] {
				tmpl, parseErr = template.New(name).Funcs(r.funcMap).ParseFS(
					templateFS, path.Join("templates", set, name),
				)
			} else {
				tmpl, parseErr = template.New("base.html").Funcs(r.funcMap).ParseFS(
					templateFS,
					path.Join("templates", set, "base.html"),
					path.Join("templates", set, name),
				)
			}
			if parseErr != nil {
				return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
			}

			r.templates[tmplName] = tmpl
		}
	}

	return r, nil
}

// Page renders a full page or an HTMX partial, depending on the request
// headers. For HTMX requests, only the "content" block is sent.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token and language from context (set by middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())
	if data.Tr == nil {
		data.Tr = middleware.ResolverFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if isHTMX(r) && !standaloneTemplates[name] {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = path.Base(name) + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
