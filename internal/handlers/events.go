// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"mcfolio/internal/notify"
)

// keepAliveInterval paces SSE comments so proxies keep the stream open.
const keepAliveInterval = 30 * time.Second

// Events streams content change notifications to the admin dashboard as
// server-sent events. The dashboard reloads its active tab when a change
// for it arrives. Without a change feed the stream closes immediately
// and the dashboard falls back to manual refresh.
func Events(feed *notify.Feed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		sub, err := feed.Subscribe(r.Context(),
			notify.KindBookings, notify.KindMedia, notify.KindNews)
		if err != nil {
			http.Error(w, "change feed unavailable", http.StatusServiceUnavailable)
			return
		}
		defer sub.Cancel()

		// The server's write timeout would sever a quiet stream; lift it
		// for this response only. Writers without deadline support (tests)
		// just return an error we can ignore.
		_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		flusher.Flush()

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case kind, ok := <-sub.C:
				if !ok {
					return
				}
				if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", kind); err != nil {
					slog.Debug("sse write failed", "error", err)
					return
				}
				flusher.Flush()
			case <-keepAlive.C:
				if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
