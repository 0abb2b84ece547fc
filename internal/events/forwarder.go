// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/thejerf/suture/v4"
)

// DeliverFunc receives each event read from the bus.
type DeliverFunc func(ctx context.Context, e Event)

// Forwarder is a suture service that drains the bus into a DeliverFunc.
type Forwarder struct {
	bus     *Bus
	deliver DeliverFunc
}

// NewForwarder creates a Forwarder.
func NewForwarder(bus *Bus, deliver DeliverFunc) *Forwarder {
	return &Forwarder{bus: bus, deliver: deliver}
}

// Serve implements suture.Service.
func (f *Forwarder) Serve(ctx context.Context) error {
	ch, err := f.bus.Subscribe(ctx)
	if errors.Is(err, ErrBusClosed) {
		return suture.ErrDoNotRestart
	}
	if err != nil {
		return fmt.Errorf("event forwarder: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-ch:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return suture.ErrDoNotRestart
			}
			f.deliver(ctx, e)
		}
	}
}

// String implements fmt.Stringer for suture logging.
func (f *Forwarder) String() string {
	return "event-forwarder"
}
