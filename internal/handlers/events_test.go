// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"mcfolio/internal/notify"
)

func TestEventsWithoutFeedIs503(t *testing.T) {
	h := Events(nil)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/admin/events", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", rec.Code)
	}
}

func eventsFeed(t *testing.T) *notify.Feed {
	t.Helper()
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	client, err := notify.Connect(host+":"+port, os.Getenv("REDIS_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: redis not available: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return notify.NewFeed(client)
}

// The stream must survive idle periods longer than the server's write
// timeout, so a dashboard left open still receives changes hours later.
func TestEventsOutlivesWriteTimeout(t *testing.T) {
	feed := eventsFeed(t)

	srv := httptest.NewUnstartedServer(Events(feed))
	srv.Config.WriteTimeout = 250 * time.Millisecond
	srv.Start()
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type: got %q, want text/event-stream", ct)
	}

	// Sit idle past the write timeout before the first event is sent.
	time.Sleep(500 * time.Millisecond)

	feed.Publish(context.Background(), notify.KindBookings)

	closer := time.AfterFunc(5*time.Second, func() { resp.Body.Close() })
	defer closer.Stop()

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("stream severed before event arrived: %v", err)
		}
		if line == "data: "+notify.KindBookings+"\n" {
			return
		}
	}
}
