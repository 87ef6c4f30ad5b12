package users

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrival/taskboard/internal/board"
	"github.com/dmitrival/taskboard/internal/common"
	"github.com/dmitrival/taskboard/internal/logging"
	"github.com/dmitrival/taskboard/internal/server/notify"
	"github.com/dmitrival/taskboard/internal/server/storage"
)

type recordingEndpoint struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recordingEndpoint) Send(e notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingEndpoint) received() []notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Event, len(r.events))
	copy(out, r.events)
	return out
}

func newTestDirectory(t *testing.T) (*Directory, *notify.Hub) {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hub := notify.NewHub(logger)
	return NewDirectory(nil, storage.NewMemory(), hub, logger), hub
}

func TestDirectory_Register(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDirectory(t)

	require.NoError(t, d.Register(ctx, "alice", "secret"))
	assert.True(t, d.Exists("alice"))
	assert.False(t, d.Exists("bob"))

	err := d.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, common.ErrUserExists)
}

func TestDirectory_LoginLogout(t *testing.T) {
	ctx := context.Background()
	d, _ := newTestDirectory(t)
	require.NoError(t, d.Register(ctx, "alice", "secret"))

	assert.ErrorIs(t, d.Login(ctx, "ghost", "secret"), common.ErrUserNotFound)
	assert.ErrorIs(t, d.Login(ctx, "alice", "wrong"), common.ErrWrongPassword)

	require.NoError(t, d.Login(ctx, "alice", "secret"))
	assert.Equal(t, map[string]bool{"alice": true}, d.SnapshotPresence())

	assert.ErrorIs(t, d.Login(ctx, "alice", "secret"), common.ErrAlreadyLoggedIn)

	require.NoError(t, d.Logout(ctx, "alice"))
	assert.Equal(t, map[string]bool{"alice": false}, d.SnapshotPresence())

	assert.ErrorIs(t, d.Logout(ctx, "alice"), common.ErrAlreadyLoggedOut)
	assert.ErrorIs(t, d.Logout(ctx, "ghost"), common.ErrUserNotFound)
}

func TestDirectory_PresenceEventsReachSubscribers(t *testing.T) {
	ctx := context.Background()
	d, hub := newTestDirectory(t)

	peer := &recordingEndpoint{}
	hub.Register("peer", peer)

	require.NoError(t, d.Register(ctx, "alice", "secret"))
	require.NoError(t, d.Login(ctx, "alice", "secret"))
	require.NoError(t, d.Logout(ctx, "alice"))

	events := peer.received()
	require.Len(t, events, 3)
	assert.Equal(t, notify.Event{Kind: notify.KindPresenceChanged, Username: "alice", Online: false}, events[0])
	assert.Equal(t, notify.Event{Kind: notify.KindPresenceChanged, Username: "alice", Online: true}, events[1])
	assert.Equal(t, notify.Event{Kind: notify.KindPresenceChanged, Username: "alice", Online: false}, events[2])
}

func TestNewDirectory_RestoredUsersStartOffline(t *testing.T) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hub := notify.NewHub(logger)

	u, err := board.NewUser("alice", "secret")
	require.NoError(t, err)
	u.Online = true

	d := NewDirectory([]*board.User{u}, storage.NewMemory(), hub, logger)
	assert.Equal(t, map[string]bool{"alice": false}, d.SnapshotPresence())
}
