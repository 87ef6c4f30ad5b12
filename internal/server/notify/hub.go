package notify

import (
	"context"
	"sync"

	"github.com/dmitrival/taskboard/internal/logging"
)

// Hub maps usernames to their single live endpoint and fans events out.
// Publish methods snapshot the subscriber map under the lock and deliver
// outside it, so a slow endpoint cannot stall registrations and an
// eviction cannot corrupt an in-progress fan-out.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]Endpoint
	logger logging.Logger
}

func NewHub(logger logging.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]Endpoint),
		logger: logger.With("module", "notify_hub"),
	}
}

// Register sets the endpoint for user, replacing any previous one.
func (h *Hub) Register(user string, endpoint Endpoint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[user] = endpoint
}

// Unregister drops the user's endpoint. Unknown users are a no-op.
func (h *Hub) Unregister(user string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, user)
}

// UnregisterEndpoint drops the user's subscription only while it is
// still endpoint, so a replacement registered meanwhile survives its
// predecessor's teardown.
func (h *Hub) UnregisterEndpoint(user string, endpoint Endpoint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.subs[user]; ok && current == endpoint {
		delete(h.subs, user)
	}
}

// NotifyChannelAssigned unicasts the project's chat address to user.
// A user without a live endpoint is silently skipped: they may simply
// be offline and will learn their projects at next login.
func (h *Hub) NotifyChannelAssigned(ctx context.Context, user, project, chatAddr string) {
	h.mu.Lock()
	endpoint, ok := h.subs[user]
	h.mu.Unlock()
	if !ok {
		return
	}

	h.deliver(ctx, user, endpoint, Event{
		Kind:     KindChannelAssigned,
		Project:  project,
		ChatAddr: chatAddr,
	})
}

// NotifyProjectRemoved unicasts the removal to each subscribed member.
func (h *Hub) NotifyProjectRemoved(ctx context.Context, members []string, project string) {
	h.mu.Lock()
	targets := make(map[string]Endpoint, len(members))
	for _, member := range members {
		if endpoint, ok := h.subs[member]; ok {
			targets[member] = endpoint
		}
	}
	h.mu.Unlock()

	for member, endpoint := range targets {
		h.deliver(ctx, member, endpoint, Event{Kind: KindProjectRemoved, Project: project})
	}
}

// NotifyPresenceChanged broadcasts the new presence of username to every
// current subscriber.
func (h *Hub) NotifyPresenceChanged(ctx context.Context, username string, online bool) {
	h.mu.Lock()
	targets := make(map[string]Endpoint, len(h.subs))
	for user, endpoint := range h.subs {
		targets[user] = endpoint
	}
	h.mu.Unlock()

	event := Event{Kind: KindPresenceChanged, Username: username, Online: online}
	for user, endpoint := range targets {
		h.deliver(ctx, user, endpoint, event)
	}
}

// deliver sends one event and evicts the subscription on failure. No
// retries: the user must re-subscribe to resume receiving events. The
// eviction double-checks identity so a replacement endpoint registered
// mid-fan-out is not torn down by its predecessor's failure.
func (h *Hub) deliver(ctx context.Context, user string, endpoint Endpoint, event Event) {
	if err := endpoint.Send(event); err == nil {
		return
	}

	h.mu.Lock()
	if current, ok := h.subs[user]; ok && current == endpoint {
		delete(h.subs, user)
	}
	h.mu.Unlock()

	h.logger.Warn(ctx, "evicted dead subscriber", "user", user, "event", string(event.Kind))
}
