package projects

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

type recordingPoster struct {
	mu      sync.Mutex
	notices []string
}

func (r *recordingPoster) Post(ctx context.Context, chatAddr, user, action string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, user+" "+action)
	return nil
}

func (r *recordingPoster) posted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.notices))
	copy(out, r.notices)
	return out
}

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

func newTestRegistry(t *testing.T) (*Registry, *Allocator, *notify.Hub, *recordingPoster) {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hub := notify.NewHub(logger)
	alloc := NewAllocator()
	poster := &recordingPoster{}
	r := NewRegistry(nil, alloc, storage.NewMemory(), hub, poster, logger)
	return r, alloc, hub, poster
}

func TestRegistry_Create(t *testing.T) {
	ctx := context.Background()
	r, _, hub, _ := newTestRegistry(t)

	creator := &recordingEndpoint{}
	hub.Register("alice", creator)

	require.NoError(t, r.Create(ctx, "p1", "alice"))

	infos := r.ListProjectsOf(ctx, "alice")
	require.Len(t, infos, 1)
	assert.Equal(t, "p1", infos[0].Name)
	assert.NotEmpty(t, infos[0].ChatAddr)

	members, err := r.ShowMembers(ctx, "p1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, members)

	events := creator.received()
	require.Len(t, events, 1)
	assert.Equal(t, notify.KindChannelAssigned, events[0].Kind)
	assert.Equal(t, "p1", events[0].Project)
	assert.Equal(t, infos[0].ChatAddr, events[0].ChatAddr)
}

func TestRegistry_Create_DuplicateLeavesFirstUntouched(t *testing.T) {
	ctx := context.Background()
	r, _, _, _ := newTestRegistry(t)

	require.NoError(t, r.Create(ctx, "p1", "alice"))
	first := r.ListProjectsOf(ctx, "alice")[0]

	err := r.Create(ctx, "p1", "bob")
	assert.ErrorIs(t, err, common.ErrProjectExists)

	members, err := r.ShowMembers(ctx, "p1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, members)
	assert.Equal(t, first, r.ListProjectsOf(ctx, "alice")[0])
}

func TestRegistry_MembershipGates(t *testing.T) {
	ctx := context.Background()
	r, _, _, _ := newTestRegistry(t)
	require.NoError(t, r.Create(ctx, "p1", "alice"))

	_, err := r.ShowCards(ctx, "nope", "alice")
	assert.ErrorIs(t, err, common.ErrProjectNotFound)

	_, err = r.ShowCards(ctx, "p1", "mallory")
	assert.ErrorIs(t, err, common.ErrNotMember)

	assert.ErrorIs(t, r.AddCard(ctx, "p1", "c", "d", "mallory"), common.ErrNotMember)
	assert.ErrorIs(t, r.Cancel(ctx, "p1", "mallory"), common.ErrNotMember)
}

func TestRegistry_AddMember(t *testing.T) {
	ctx := context.Background()
	r, _, hub, poster := newTestRegistry(t)
	require.NoError(t, r.Create(ctx, "p1", "alice"))

	bob := &recordingEndpoint{}
	hub.Register("bob", bob)

	require.NoError(t, r.AddMember(ctx, "p1", "bob", "alice"))

	members, err := r.ShowMembers(ctx, "p1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, members)

	err = r.AddMember(ctx, "p1", "bob", "alice")
	assert.ErrorIs(t, err, common.ErrAlreadyMember)
	members, err = r.ShowMembers(ctx, "p1", "alice")
	require.NoError(t, err)
	assert.Len(t, members, 2)

	events := bob.received()
	require.Len(t, events, 1)
	assert.Equal(t, notify.KindChannelAssigned, events[0].Kind)
	assert.Equal(t, "p1", events[0].Project)

	assert.Contains(t, poster.posted(), "alice added bob as member")
}

func TestRegistry_CardLifecycle(t *testing.T) {
	ctx := context.Background()
	r, _, _, poster := newTestRegistry(t)
	require.NoError(t, r.Create(ctx, "p1", "alice"))

	require.NoError(t, r.AddCard(ctx, "p1", "task1", "desc", "alice"))
	assert.ErrorIs(t, r.AddCard(ctx, "p1", "task1", "other", "alice"), common.ErrCardExists)

	card, err := r.ShowCard(ctx, "p1", "task1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []board.CardState{board.StateTodo}, card.History)

	_, err = r.ShowCard(ctx, "p1", "ghost", "alice")
	assert.ErrorIs(t, err, common.ErrCardNotFound)

	require.NoError(t, r.MoveCard(ctx, "p1", "task1", board.StateInProgress, "alice"))
	assert.ErrorIs(t, r.MoveCard(ctx, "p1", "task1", board.StateTodo, "alice"), common.ErrIllegalMove)
	require.NoError(t, r.MoveCard(ctx, "p1", "task1", board.StateDone, "alice"))

	history, err := r.CardHistory(ctx, "p1", "task1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []board.CardState{board.StateTodo, board.StateInProgress, board.StateDone}, history)

	assert.Equal(t, []string{
		"alice added card task1",
		"alice moved card task1 into INPROGRESS",
		"alice moved card task1 into DONE",
	}, poster.posted())
}

func TestRegistry_ShowCard_ReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	r, _, _, _ := newTestRegistry(t)
	require.NoError(t, r.Create(ctx, "p1", "alice"))
	require.NoError(t, r.AddCard(ctx, "p1", "task1", "desc", "alice"))

	card, err := r.ShowCard(ctx, "p1", "task1", "alice")
	require.NoError(t, err)
	card.History = append(card.History, board.StateDone)

	history, err := r.CardHistory(ctx, "p1", "task1", "alice")
	require.NoError(t, err)
	assert.Equal(t, []board.CardState{board.StateTodo}, history)
}

func TestRegistry_Cancel_RequiresAllCardsDone(t *testing.T) {
	ctx := context.Background()
	r, alloc, hub, poster := newTestRegistry(t)

	alice := &recordingEndpoint{}
	bob := &recordingEndpoint{}
	hub.Register("alice", alice)
	hub.Register("bob", bob)

	require.NoError(t, r.Create(ctx, "p1", "alice"))
	require.NoError(t, r.AddMember(ctx, "p1", "bob", "alice"))
	chatAddr := r.ListProjectsOf(ctx, "alice")[0].ChatAddr

	require.NoError(t, r.AddCard(ctx, "p1", "task1", "desc", "alice"))

	err := r.Cancel(ctx, "p1", "alice")
	assert.ErrorIs(t, err, common.ErrProjectNotDone)
	assert.Len(t, r.ListProjectsOf(ctx, "alice"), 1, "project must survive a refused cancel")

	require.NoError(t, r.MoveCard(ctx, "p1", "task1", board.StateInProgress, "alice"))
	require.NoError(t, r.MoveCard(ctx, "p1", "task1", board.StateDone, "alice"))

	require.NoError(t, r.Cancel(ctx, "p1", "alice"))
	assert.Empty(t, r.ListProjectsOf(ctx, "alice"))

	// chat address is allocatable again
	alloc.mu.Lock()
	_, taken := alloc.used[chatAddr]
	alloc.mu.Unlock()
	assert.False(t, taken)

	// every former member was notified
	for _, ep := range []*recordingEndpoint{alice, bob} {
		events := ep.received()
		var removed bool
		for _, e := range events {
			if e.Kind == notify.KindProjectRemoved && e.Project == "p1" {
				removed = true
			}
		}
		assert.True(t, removed)
	}

	assert.Contains(t, poster.posted(), "alice deleted project")

	assert.ErrorIs(t, r.MoveCard(ctx, "p1", "task1", board.StateTodo, "alice"), common.ErrProjectNotFound)
}

func TestRegistry_Cancel_EmptyProject(t *testing.T) {
	ctx := context.Background()
	r, _, _, _ := newTestRegistry(t)
	require.NoError(t, r.Create(ctx, "p1", "alice"))
	require.NoError(t, r.Cancel(ctx, "p1", "alice"))
	assert.Empty(t, r.ListProjectsOf(ctx, "alice"))
}

func TestNewRegistry_RestoresAndReservesAddresses(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hub := notify.NewHub(logger)
	alloc := NewAllocator()

	restored := board.NewProject("p1", "239.9.9.9")
	restored.RestoreMembers([]string{"alice"})

	r := NewRegistry([]*board.Project{restored}, alloc, storage.NewMemory(), hub, &recordingPoster{}, logger)

	infos := r.ListProjectsOf(ctx, "alice")
	require.Len(t, infos, 1)
	assert.Equal(t, "239.9.9.9", infos[0].ChatAddr)

	alloc.mu.Lock()
	_, taken := alloc.used["239.9.9.9"]
	alloc.mu.Unlock()
	assert.True(t, taken)
}
