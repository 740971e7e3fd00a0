// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify provides a Redis-backed change feed. Mutations publish a
// message keyed by record kind; the admin dashboard subscribes so open
// sessions refresh when data changes under them.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Record kinds carried on the feed.
const (
	KindBookings = "bookings"
	KindMedia    = "media"
	KindNews     = "news"
)

// channelPrefix namespaces feed channels in Redis.
const channelPrefix = "changes:"

// Connect creates a Redis client and verifies the connection with a ping.
func Connect(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	slog.Info("redis connected", "addr", addr)
	return client, nil
}

// Feed publishes and delivers change notifications. A nil Feed is valid
// and drops everything, so callers never need to branch on availability.
type Feed struct {
	client *redis.Client
}

// NewFeed wraps a Redis client as a change feed. Accepts nil.
func NewFeed(client *redis.Client) *Feed {
	if client == nil {
		return nil
	}
	return &Feed{client: client}
}

// Publish announces that records of the given kind changed. Failures are
// logged, not returned: the mutation already happened and must not be
// rolled back over a lost notification.
func (f *Feed) Publish(ctx context.Context, kind string) {
	if f == nil {
		return
	}
	if err := f.client.Publish(ctx, channelPrefix+kind, kind).Err(); err != nil {
		slog.Warn("change feed publish failed", "kind", kind, "error", err)
	}
}

// Subscription delivers change kinds on C until Cancel is called or the
// subscribe context ends.
type Subscription struct {
	C      <-chan string
	cancel context.CancelFunc
}

// Cancel stops the subscription and closes C.
func (s *Subscription) Cancel() {
	s.cancel()
}

// Subscribe listens for changes on the given kinds. Returns an error when
// the feed is unavailable.
func (f *Feed) Subscribe(ctx context.Context, kinds ...string) (*Subscription, error) {
	if f == nil {
		return nil, fmt.Errorf("change feed unavailable")
	}

	channels := make([]string, len(kinds))
	for i, k := range kinds {
		channels[i] = channelPrefix + k
	}

	ctx, cancel := context.WithCancel(ctx)
	pubsub := f.client.Subscribe(ctx, channels...)

	// Confirm the subscription before handing it out.
	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		pubsub.Close()
		return nil, fmt.Errorf("change feed subscribe: %w", err)
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{C: out, cancel: cancel}, nil
}
