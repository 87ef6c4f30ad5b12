package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrival/taskboard/internal/logging"
)

type fakeEndpoint struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (f *fakeEndpoint) Send(e Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("endpoint gone")
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEndpoint) received() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.events))
	copy(out, f.events)
	return out
}

func newTestHub() *Hub {
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewHub(l)
}

func TestHub_PresenceBroadcast_EvictsFailingEndpoint(t *testing.T) {
	ctx := context.Background()
	hub := newTestHub()

	alice := &fakeEndpoint{}
	bob := &fakeEndpoint{}
	dead := &fakeEndpoint{fail: true}

	hub.Register("alice", alice)
	hub.Register("bob", bob)
	hub.Register("carol", dead)

	hub.NotifyPresenceChanged(ctx, "dave", true)

	require.Len(t, alice.received(), 1)
	require.Len(t, bob.received(), 1)
	assert.Equal(t, Event{Kind: KindPresenceChanged, Username: "dave", Online: true}, alice.received()[0])

	// the dead endpoint was evicted: a later broadcast is not attempted
	dead.mu.Lock()
	dead.fail = false
	dead.mu.Unlock()

	hub.NotifyPresenceChanged(ctx, "dave", false)

	assert.Len(t, alice.received(), 2)
	assert.Len(t, bob.received(), 2)
	assert.Empty(t, dead.received())
}

func TestHub_ChannelAssigned_UnicastOrDropped(t *testing.T) {
	ctx := context.Background()
	hub := newTestHub()

	alice := &fakeEndpoint{}
	bob := &fakeEndpoint{}
	hub.Register("alice", alice)
	hub.Register("bob", bob)

	hub.NotifyChannelAssigned(ctx, "alice", "p1", "239.1.2.3")
	hub.NotifyChannelAssigned(ctx, "offline-user", "p1", "239.1.2.3")

	require.Len(t, alice.received(), 1)
	assert.Equal(t, Event{Kind: KindChannelAssigned, Project: "p1", ChatAddr: "239.1.2.3"}, alice.received()[0])
	assert.Empty(t, bob.received(), "unicast must not reach other subscribers")
}

func TestHub_ProjectRemoved_OnlySubscribedMembers(t *testing.T) {
	ctx := context.Background()
	hub := newTestHub()

	alice := &fakeEndpoint{}
	carol := &fakeEndpoint{}
	hub.Register("alice", alice)
	hub.Register("carol", carol)

	hub.NotifyProjectRemoved(ctx, []string{"alice", "bob"}, "p1")

	require.Len(t, alice.received(), 1)
	assert.Equal(t, Event{Kind: KindProjectRemoved, Project: "p1"}, alice.received()[0])
	assert.Empty(t, carol.received(), "non-members must not be notified")
}

func TestHub_Register_ReplacesPreviousEndpoint(t *testing.T) {
	ctx := context.Background()
	hub := newTestHub()

	first := &fakeEndpoint{}
	second := &fakeEndpoint{}
	hub.Register("alice", first)
	hub.Register("alice", second)

	hub.NotifyPresenceChanged(ctx, "bob", true)

	assert.Empty(t, first.received())
	assert.Len(t, second.received(), 1)
}

func TestHub_Unregister_UnknownUserIsNoop(t *testing.T) {
	hub := newTestHub()
	hub.Unregister("ghost")
}

func TestHub_UnregisterEndpoint_SparesReplacement(t *testing.T) {
	ctx := context.Background()
	hub := newTestHub()

	stale := &fakeEndpoint{}
	fresh := &fakeEndpoint{}
	hub.Register("alice", stale)
	hub.Register("alice", fresh)

	hub.UnregisterEndpoint("alice", stale)

	hub.NotifyPresenceChanged(ctx, "bob", true)
	assert.Len(t, fresh.received(), 1)

	hub.UnregisterEndpoint("alice", fresh)

	hub.NotifyPresenceChanged(ctx, "bob", false)
	assert.Len(t, fresh.received(), 1)
}
