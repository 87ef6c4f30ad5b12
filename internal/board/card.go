// Package board contains the task-board domain entities: users, projects
// and cards with their workflow. Entities carry no locking of their own;
// the managers in internal/server serialize all access.
package board

import (
	"strings"

	"github.com/dmitrival/taskboard/internal/common"
)

// CardState is one of the four workflow stages a card moves through.
type CardState string

const (
	StateTodo        CardState = "TODO"
	StateInProgress  CardState = "INPROGRESS"
	StateToBeRevised CardState = "TOBEREVISED"
	StateDone        CardState = "DONE"
)

// transitions lists the legal destination states for each state. Anything
// not listed here (including self-moves and any move out of DONE) is
// rejected.
var transitions = map[CardState][]CardState{
	StateTodo:        {StateInProgress},
	StateInProgress:  {StateToBeRevised, StateDone},
	StateToBeRevised: {StateDone, StateInProgress},
	StateDone:        {},
}

// ParseCardState converts a case-insensitive string into a CardState.
// Returns common.ErrUnknownState for anything unrecognized.
func ParseCardState(s string) (CardState, error) {
	switch CardState(strings.ToUpper(s)) {
	case StateTodo:
		return StateTodo, nil
	case StateInProgress:
		return StateInProgress, nil
	case StateToBeRevised:
		return StateToBeRevised, nil
	case StateDone:
		return StateDone, nil
	}
	return "", common.ErrUnknownState
}

// CanMoveTo reports whether the workflow allows a move from s to dst.
func (s CardState) CanMoveTo(dst CardState) bool {
	for _, t := range transitions[s] {
		if t == dst {
			return true
		}
	}
	return false
}

// Card is a unit of work. Its state history is append-only: the first
// entry is always TODO and the last entry is the current state.
type Card struct {
	Name        string
	Description string
	History     []CardState
}

// NewCard creates a card in TODO.
func NewCard(name, description string) *Card {
	return &Card{
		Name:        name,
		Description: description,
		History:     []CardState{StateTodo},
	}
}

// State returns the card's current state.
func (c *Card) State() CardState {
	return c.History[len(c.History)-1]
}

// Move appends dst to the history if the workflow allows the transition
// from the current state. On failure the history is left untouched.
func (c *Card) Move(dst CardState) error {
	if _, err := ParseCardState(string(dst)); err != nil {
		return err
	}
	if !c.State().CanMoveTo(dst) {
		return common.ErrIllegalMove
	}
	c.History = append(c.History, dst)
	return nil
}

// Clone returns a deep copy so callers never hold references into live
// registry state.
func (c *Card) Clone() *Card {
	history := make([]CardState, len(c.History))
	copy(history, c.History)
	return &Card{Name: c.Name, Description: c.Description, History: history}
}
