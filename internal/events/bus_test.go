// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/models"
)

func testMatch() *models.Match {
	return &models.Match{ID: "m1", UserA: "alice", UserB: "bob", Status: models.MatchPending, InitiatedBy: "alice"}
}

func TestNewMatchEvent(t *testing.T) {
	t.Parallel()

	ctx := logging.ContextWithCorrelationID(context.Background(), "corr-9")
	m := testMatch()
	e := NewMatchEvent(ctx, TypeMatchCreated, "alice", m)

	if e.ID == "" || e.Type != TypeMatchCreated || e.CorrelationID != "corr-9" || e.Actor != "alice" {
		t.Errorf("unexpected event: %+v", e)
	}
	if len(e.Recipients) != 2 || e.Recipients[0] != "alice" || e.Recipients[1] != "bob" {
		t.Errorf("recipients = %v", e.Recipients)
	}
	m.Status = models.MatchAccepted
	if e.Match.Status != models.MatchPending {
		t.Error("event should hold a snapshot of the match")
	}
}

func TestBusPublishSubscribe(t *testing.T) {
	t.Parallel()

	bus := NewBus(Config{}, zerolog.Nop())
	defer bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ch, err := bus.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	sent := NewMatchEvent(ctx, TypeMatchStatusChanged, "bob", testMatch())
	if err := bus.Publish(ctx, sent); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case got := <-ch:
		if got.ID != sent.ID || got.Type != TypeMatchStatusChanged || got.Match == nil || got.Match.ID != "m1" {
			t.Errorf("received %+v, want %+v", got, sent)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for event")
	}
}

func TestBusClosed(t *testing.T) {
	t.Parallel()

	bus := NewBus(DefaultConfig(), zerolog.Nop())
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Errorf("second close should be a no-op: %v", err)
	}
	if err := bus.Publish(context.Background(), NewMatchEvent(context.Background(), TypeMatchDeleted, "", testMatch())); !errors.Is(err, ErrBusClosed) {
		t.Errorf("publish after close = %v", err)
	}
	if _, err := bus.Subscribe(context.Background()); !errors.Is(err, ErrBusClosed) {
		t.Errorf("subscribe after close = %v", err)
	}
}

func TestBusBreakerStartsClosed(t *testing.T) {
	t.Parallel()

	bus := NewBus(DefaultConfig(), zerolog.Nop())
	defer bus.Close()
	if got := bus.BreakerState(); got != "closed" {
		t.Errorf("breaker state = %q, want closed", got)
	}
}

func TestNoopPublisher(t *testing.T) {
	t.Parallel()

	var p Publisher = NoopPublisher{}
	if err := p.Publish(context.Background(), Event{}); err != nil {
		t.Errorf("noop publish: %v", err)
	}
}

func TestForwarderDelivers(t *testing.T) {
	t.Parallel()

	bus := NewBus(Config{}, zerolog.Nop())
	defer bus.Close()

	var (
		mu       sync.Mutex
		received []Event
		got      = make(chan struct{}, 1)
	)
	fwd := NewForwarder(bus, func(_ context.Context, e Event) {
		mu.Lock()
		received = append(received, e)
		mu.Unlock()
		select {
		case got <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fwd.Serve(ctx) }()

	// Publish until the forwarder's subscription is live; GoChannel drops
	// messages published before anyone subscribes.
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-got:
			break loop
		case <-ticker.C:
			_ = bus.Publish(context.Background(), NewMatchEvent(context.Background(), TypeMatchCreated, "alice", testMatch()))
		case <-deadline:
			t.Fatal("forwarder never delivered")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("forwarder did not stop on cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(received) == 0 || received[0].Type != TypeMatchCreated {
		t.Errorf("received = %+v", received)
	}
}

func TestForwarderStopsWhenBusClosed(t *testing.T) {
	t.Parallel()

	bus := NewBus(Config{}, zerolog.Nop())
	_ = bus.Close()

	err := NewForwarder(bus, func(context.Context, Event) {}).Serve(context.Background())
	if !errors.Is(err, suture.ErrDoNotRestart) {
		t.Errorf("err = %v, want ErrDoNotRestart", err)
	}
}
