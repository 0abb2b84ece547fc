// Devmatch - Developer Compatibility Matching
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/devmatch

package websocket

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/tomtom215/devmatch/internal/events"
	"github.com/tomtom215/devmatch/internal/logging"
	"github.com/tomtom215/devmatch/internal/metrics"
)

// ShutdownReason identifies why the hub stopped.
type ShutdownReason string

const (
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types.
const (
	MessageTypePing = "ping"
	MessageTypePong = "pong"
)

// Message is one JSON frame.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// delivery is a message addressed to a set of users.
type delivery struct {
	recipients []string
	message    Message
}

// Hub tracks connected clients per user and routes addressed messages.
type Hub struct {
	clients    map[*Client]bool
	outbox     chan delivery
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex

	done     chan struct{}
	doneOnce sync.Once
}

// NewHub creates a Hub. Run it with RunWithContext.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		outbox:     make(chan delivery, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Done is closed once the hub has shut down.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// RunWithContext processes registrations and deliveries until ctx is done,
// then closes every client. Lifecycle events are drained before deliveries
// so a message never races its recipient's registration.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.register(client)
			continue
		case client := <-h.Unregister:
			h.unregister(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.register(client)
		case client := <-h.Unregister:
			h.unregister(client)
		case d := <-h.outbox:
			h.deliver(d)
		}
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Inc()
	logging.Debug().Str("user_id", client.userID).Int("total_clients", total).Msg("websocket client connected")
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	removed := h.removeLocked(client)
	total := len(h.clients)
	h.mu.Unlock()

	if removed {
		logging.Debug().Str("user_id", client.userID).Int("total_clients", total).Msg("websocket client disconnected")
	}
}

// removeLocked drops client and closes its send channel. Callers hold h.mu.
func (h *Hub) removeLocked(client *Client) bool {
	if _, ok := h.clients[client]; !ok {
		return false
	}
	delete(h.clients, client)
	close(client.send)
	metrics.WSConnections.Dec()
	return true
}

// deliver sends d to every connection of every recipient. Clients whose
// buffer is full are dropped.
func (h *Hub) deliver(d delivery) {
	wanted := make(map[string]bool, len(d.recipients))
	for _, id := range d.recipients {
		wanted[id] = true
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.sortedLocked() {
		if !wanted[client.userID] {
			continue
		}
		select {
		case client.send <- d.message:
			metrics.WSMessagesSent.Inc()
		default:
			logging.Warn().Str("user_id", client.userID).Msg("websocket client too slow, disconnecting")
			h.removeLocked(client)
		}
	}
}

// sortedLocked returns clients in connection order. Callers hold h.mu.
func (h *Hub) sortedLocked() []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	return clients
}

func (h *Hub) shutdown(ctx context.Context) {
	h.doneOnce.Do(func() { close(h.done) })

	h.mu.Lock()
	count := len(h.clients)
	for _, client := range h.sortedLocked() {
		h.removeLocked(client)
	}
	h.mu.Unlock()

	reason := ShutdownReasonContextCanceled
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		reason = ShutdownReasonContextDeadline
	}
	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(reason)).
		Int("clients_closed", count).
		Msg("websocket hub stopped")
}

// SendToUsers queues msg for every connection of the given users. It never
// blocks; when the outbox is full the message is dropped and false returned.
func (h *Hub) SendToUsers(userIDs []string, msg Message) bool {
	if len(userIDs) == 0 {
		return true
	}
	select {
	case h.outbox <- delivery{recipients: append([]string(nil), userIDs...), message: msg}:
		return true
	default:
		logging.Warn().Str("message_type", msg.Type).Msg("websocket outbox full, dropping message")
		return false
	}
}

// Deliver forwards a match event to its recipients. It satisfies
// events.DeliverFunc.
func (h *Hub) Deliver(_ context.Context, e events.Event) {
	h.SendToUsers(e.Recipients, Message{Type: string(e.Type), Data: e})
}

// GetClientCount returns the number of open connections.
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// IsConnected reports whether userID has at least one open connection.
func (h *Hub) IsConnected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if client.userID == userID {
			return true
		}
	}
	return false
}
