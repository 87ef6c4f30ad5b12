package storage

import (
	"context"
	"sync"

	"github.com/dmitrival/taskboard/internal/board"
)

// Memory is a non-durable Storage used in tests and when the server is
// started without a database DSN.
type Memory struct {
	mu       sync.Mutex
	users    map[string]*board.User
	projects map[string]*projectRecord
}

type projectRecord struct {
	chatAddr string
	members  []string
	cards    map[string]*board.Card
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[string]*board.User),
		projects: make(map[string]*projectRecord),
	}
}

func (m *Memory) AddUser(ctx context.Context, user *board.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.Name] = user.Clone()
	return nil
}

func (m *Memory) AddProject(ctx context.Context, project *board.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := &projectRecord{
		chatAddr: project.ChatAddr(),
		members:  project.Members(),
		cards:    make(map[string]*board.Card),
	}
	for _, name := range project.CardNames() {
		if c, err := project.Card(name); err == nil {
			rec.cards[name] = c
		}
	}
	m.projects[project.Name()] = rec
	return nil
}

func (m *Memory) DelProject(ctx context.Context, project *board.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.projects, project.Name())
	return nil
}

func (m *Memory) UpdateMembers(ctx context.Context, project *board.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.projects[project.Name()]; ok {
		rec.members = project.Members()
	}
	return nil
}

func (m *Memory) UpdateCard(ctx context.Context, project *board.Project, card *board.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.projects[project.Name()]; ok {
		rec.cards[card.Name] = card.Clone()
	}
	return nil
}

func (m *Memory) RestoreUsers(ctx context.Context) ([]*board.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]*board.User, 0, len(m.users))
	for _, u := range m.users {
		user := u.Clone()
		user.Online = false
		users = append(users, user)
	}
	return users, nil
}

func (m *Memory) RestoreProjects(ctx context.Context) ([]*board.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	projects := make([]*board.Project, 0, len(m.projects))
	for name, rec := range m.projects {
		p := board.NewProject(name, rec.chatAddr)
		p.RestoreMembers(rec.members)
		for _, c := range rec.cards {
			p.RestoreCard(c.Clone())
		}
		projects = append(projects, p)
	}
	return projects, nil
}
