package board

import "github.com/dmitrival/taskboard/internal/common"

// Project groups cards into the four workflow buckets and keeps its
// member list in join order. Every project owns a multicast chat address
// assigned at creation.
type Project struct {
	name     string
	chatAddr string
	members  []string
	buckets  map[CardState]map[string]*Card
}

func NewProject(name, chatAddr string) *Project {
	return &Project{
		name:     name,
		chatAddr: chatAddr,
		buckets: map[CardState]map[string]*Card{
			StateTodo:        {},
			StateInProgress:  {},
			StateToBeRevised: {},
			StateDone:        {},
		},
	}
}

func (p *Project) Name() string { return p.name }

// ChatAddr returns the multicast address of the project's chat channel.
func (p *Project) ChatAddr() string { return p.chatAddr }

// Members returns a copy of the member list in join order.
func (p *Project) Members() []string {
	members := make([]string, len(p.members))
	copy(members, p.members)
	return members
}

// AddMember appends user to the member list, keeping join order.
func (p *Project) AddMember(user string) error {
	if p.IsMember(user) {
		return common.ErrAlreadyMember
	}
	p.members = append(p.members, user)
	return nil
}

func (p *Project) IsMember(user string) bool {
	for _, m := range p.members {
		if m == user {
			return true
		}
	}
	return false
}

// AddCard creates a card in the TODO bucket. Card names are unique
// across all four buckets.
func (p *Project) AddCard(cardName, description string) error {
	if p.findCard(cardName) != nil {
		return common.ErrCardExists
	}
	p.buckets[StateTodo][cardName] = NewCard(cardName, description)
	return nil
}

// Card returns a deep copy of the named card.
func (p *Project) Card(cardName string) (*Card, error) {
	c := p.findCard(cardName)
	if c == nil {
		return nil, common.ErrCardNotFound
	}
	return c.Clone(), nil
}

// CardNames lists all card names, bucket by bucket in workflow order.
func (p *Project) CardNames() []string {
	names := make([]string, 0)
	for _, state := range []CardState{StateTodo, StateInProgress, StateToBeRevised, StateDone} {
		for name := range p.buckets[state] {
			names = append(names, name)
		}
	}
	return names
}

// CardHistory returns a copy of the named card's state history.
func (p *Project) CardHistory(cardName string) ([]CardState, error) {
	c := p.findCard(cardName)
	if c == nil {
		return nil, common.ErrCardNotFound
	}
	history := make([]CardState, len(c.History))
	copy(history, c.History)
	return history, nil
}

// MoveCard moves the named card into dst, appending to its history and
// relocating it between buckets. The card is left in place on failure.
func (p *Project) MoveCard(cardName string, dst CardState) error {
	c := p.findCard(cardName)
	if c == nil {
		return common.ErrCardNotFound
	}
	src := c.State()
	if err := c.Move(dst); err != nil {
		return err
	}
	delete(p.buckets[src], cardName)
	p.buckets[dst][cardName] = c
	return nil
}

// IsFinished reports whether every card is in DONE (vacuously true with
// no cards). Only finished projects may be cancelled.
func (p *Project) IsFinished() bool {
	return len(p.buckets[StateTodo]) == 0 &&
		len(p.buckets[StateInProgress]) == 0 &&
		len(p.buckets[StateToBeRevised]) == 0
}

func (p *Project) findCard(cardName string) *Card {
	for _, bucket := range p.buckets {
		if c, ok := bucket[cardName]; ok {
			return c
		}
	}
	return nil
}

// RestoreMembers and RestoreCard rebuild a project from storage at
// startup. RestoreCard files the card under its current state.

func (p *Project) RestoreMembers(members []string) {
	p.members = append(p.members, members...)
}

func (p *Project) RestoreCard(c *Card) {
	p.buckets[c.State()][c.Name] = c
}
