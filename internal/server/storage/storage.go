// Package storage persists the board state. The managers call it
// synchronously after every mutation and restore the full in-memory
// state from it at startup. Persistence failures are reported to the
// caller of this package but, by design, never propagate to clients.
package storage

import (
	"context"

	"github.com/dmitrival/taskboard/internal/board"
)

type Storage interface {
	AddUser(ctx context.Context, user *board.User) error
	AddProject(ctx context.Context, project *board.Project) error
	DelProject(ctx context.Context, project *board.Project) error
	UpdateMembers(ctx context.Context, project *board.Project) error
	UpdateCard(ctx context.Context, project *board.Project, card *board.Card) error
	RestoreUsers(ctx context.Context) ([]*board.User, error)
	RestoreProjects(ctx context.Context) ([]*board.Project, error)
}
