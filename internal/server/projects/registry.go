// Package projects holds the project registry: shared projects, their
// members and their card buckets. One mutex serializes every mutation
// over the project map and each project's internals; reads hand out
// value snapshots, never references into live state. Chat notices and
// hub notifications go out after the lock is released.
package projects

import (
	"context"
	"sync"

	"github.com/dmitrival/taskboard/internal/board"
	"github.com/dmitrival/taskboard/internal/common"
	"github.com/dmitrival/taskboard/internal/logging"
	"github.com/dmitrival/taskboard/internal/server/chat"
	"github.com/dmitrival/taskboard/internal/server/notify"
	"github.com/dmitrival/taskboard/internal/server/storage"
)

// ProjectInfo is the snapshot returned by ListProjectsOf.
type ProjectInfo struct {
	Name     string
	ChatAddr string
}

type Registry struct {
	mu       sync.Mutex
	projects map[string]*board.Project
	alloc    *Allocator
	store    storage.Storage
	hub      *notify.Hub
	chat     chat.Poster
	logger   logging.Logger
}

// NewRegistry builds the registry from projects restored out of storage,
// reserving their chat addresses so new allocations cannot collide.
func NewRegistry(restored []*board.Project, alloc *Allocator, store storage.Storage, hub *notify.Hub, poster chat.Poster, logger logging.Logger) *Registry {
	projects := make(map[string]*board.Project, len(restored))
	for _, p := range restored {
		projects[p.Name()] = p
		alloc.Reserve(p.ChatAddr())
	}
	return &Registry{
		projects: projects,
		alloc:    alloc,
		store:    store,
		hub:      hub,
		chat:     poster,
		logger:   logger.With("module", "project_registry"),
	}
}

// Create makes a new project with creator as its sole member and a
// freshly allocated chat address, then notifies the creator.
func (r *Registry) Create(ctx context.Context, name, creator string) error {
	r.mu.Lock()
	if _, ok := r.projects[name]; ok {
		r.mu.Unlock()
		return common.ErrProjectExists
	}

	chatAddr := r.alloc.Allocate()
	p := board.NewProject(name, chatAddr)
	if err := p.AddMember(creator); err != nil {
		r.alloc.Release(chatAddr)
		r.mu.Unlock()
		return err
	}
	r.projects[name] = p

	r.persist(ctx, "project", name, r.store.AddProject(ctx, p))
	r.mu.Unlock()

	r.hub.NotifyChannelAssigned(ctx, creator, name, chatAddr)
	return nil
}

// Cancel removes the project and releases its chat address. Only allowed
// for members, and only once every card is done.
func (r *Registry) Cancel(ctx context.Context, name, user string) error {
	r.mu.Lock()
	p, err := r.memberProject(name, user)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if !p.IsFinished() {
		r.mu.Unlock()
		return common.ErrProjectNotDone
	}

	delete(r.projects, name)
	r.alloc.Release(p.ChatAddr())
	r.persist(ctx, "project removal", name, r.store.DelProject(ctx, p))
	members := p.Members()
	chatAddr := p.ChatAddr()
	r.mu.Unlock()

	r.post(ctx, chatAddr, user, "deleted project")
	r.hub.NotifyProjectRemoved(ctx, members, name)
	return nil
}

// AddMember appends newMember to the project and tells them the chat
// address. The caller must verify that newMember is a registered user.
func (r *Registry) AddMember(ctx context.Context, name, newMember, user string) error {
	r.mu.Lock()
	p, err := r.memberProject(name, user)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if err := p.AddMember(newMember); err != nil {
		r.mu.Unlock()
		return err
	}

	r.persist(ctx, "membership", name, r.store.UpdateMembers(ctx, p))
	chatAddr := p.ChatAddr()
	r.mu.Unlock()

	r.post(ctx, chatAddr, user, "added "+newMember+" as member")
	r.hub.NotifyChannelAssigned(ctx, newMember, name, chatAddr)
	return nil
}

// AddCard creates a card in TODO.
func (r *Registry) AddCard(ctx context.Context, name, cardName, description, user string) error {
	r.mu.Lock()
	p, err := r.memberProject(name, user)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if err := p.AddCard(cardName, description); err != nil {
		r.mu.Unlock()
		return err
	}

	card, _ := p.Card(cardName)
	r.persist(ctx, "card", name, r.store.UpdateCard(ctx, p, card))
	chatAddr := p.ChatAddr()
	r.mu.Unlock()

	r.post(ctx, chatAddr, user, "added card "+cardName)
	return nil
}

// MoveCard advances the card through the workflow.
func (r *Registry) MoveCard(ctx context.Context, name, cardName string, dst board.CardState, user string) error {
	r.mu.Lock()
	p, err := r.memberProject(name, user)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if err := p.MoveCard(cardName, dst); err != nil {
		r.mu.Unlock()
		return err
	}

	card, _ := p.Card(cardName)
	r.persist(ctx, "card", name, r.store.UpdateCard(ctx, p, card))
	chatAddr := p.ChatAddr()
	r.mu.Unlock()

	r.post(ctx, chatAddr, user, "moved card "+cardName+" into "+string(dst))
	return nil
}

// ShowCard returns a copy of the named card.
func (r *Registry) ShowCard(ctx context.Context, name, cardName, user string) (*board.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.memberProject(name, user)
	if err != nil {
		return nil, err
	}
	return p.Card(cardName)
}

// ShowCards lists the project's card names.
func (r *Registry) ShowCards(ctx context.Context, name, user string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.memberProject(name, user)
	if err != nil {
		return nil, err
	}
	return p.CardNames(), nil
}

// ShowMembers lists the project's members in join order.
func (r *Registry) ShowMembers(ctx context.Context, name, user string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.memberProject(name, user)
	if err != nil {
		return nil, err
	}
	return p.Members(), nil
}

// CardHistory returns a copy of the named card's state history.
func (r *Registry) CardHistory(ctx context.Context, name, cardName, user string) ([]board.CardState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, err := r.memberProject(name, user)
	if err != nil {
		return nil, err
	}
	return p.CardHistory(cardName)
}

// ListProjectsOf returns a snapshot of every project user belongs to.
// Unrestricted: sessions call it right after login to bootstrap.
func (r *Registry) ListProjectsOf(ctx context.Context, user string) []ProjectInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	infos := make([]ProjectInfo, 0)
	for _, p := range r.projects {
		if p.IsMember(user) {
			infos = append(infos, ProjectInfo{Name: p.Name(), ChatAddr: p.ChatAddr()})
		}
	}
	return infos
}

// memberProject resolves the project and gates on membership. Callers
// hold r.mu.
func (r *Registry) memberProject(name, user string) (*board.Project, error) {
	p, ok := r.projects[name]
	if !ok {
		return nil, common.ErrProjectNotFound
	}
	if !p.IsMember(user) {
		return nil, common.ErrNotMember
	}
	return p, nil
}

func (r *Registry) persist(ctx context.Context, what, project string, err error) {
	if err != nil {
		// persistence faults are not surfaced to the caller
		r.logger.Error(ctx, "persisting "+what+" failed", "project", project, "error", err.Error())
	}
}

func (r *Registry) post(ctx context.Context, chatAddr, user, action string) {
	if err := r.chat.Post(ctx, chatAddr, user, action); err != nil {
		r.logger.Warn(ctx, "chat notice failed", "chat_addr", chatAddr, "error", err.Error())
	}
}
