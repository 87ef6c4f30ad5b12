package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrival/taskboard/internal/board"
	"github.com/dmitrival/taskboard/internal/dbx"
	"github.com/dmitrival/taskboard/internal/server/migrations"
)

// Postgres persists board state via the pgx stdlib driver. Card history
// is stored as a jsonb array of state names.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Open connects to the given DSN and applies the embedded migrations.
func Open(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	p := NewPostgres(db)
	if err := p.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return p, nil
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (p *Postgres) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, p.db, ".")
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) AddUser(ctx context.Context, user *board.User) error {
	query :=
		`INSERT INTO users (username, password_hash)
		 VALUES ($1, $2)
		 `

	_, err := p.db.ExecContext(ctx, query, user.Name, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (p *Postgres) AddProject(ctx context.Context, project *board.Project) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`INSERT INTO projects (name, chat_addr)
			 VALUES ($1, $2)
			 `

		if _, err := tx.ExecContext(ctx, query, project.Name(), project.ChatAddr()); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		if err := replaceMembers(ctx, tx, project); err != nil {
			return err
		}
		for _, name := range project.CardNames() {
			card, err := project.Card(name)
			if err != nil {
				continue
			}
			if err := upsertCard(ctx, tx, project.Name(), card); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Postgres) DelProject(ctx context.Context, project *board.Project) error {
	query :=
		`DELETE FROM projects
		 WHERE name = $1
		 `

	_, err := p.db.ExecContext(ctx, query, project.Name())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (p *Postgres) UpdateMembers(ctx context.Context, project *board.Project) error {
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return replaceMembers(ctx, tx, project)
	})
}

func (p *Postgres) UpdateCard(ctx context.Context, project *board.Project, card *board.Card) error {
	return upsertCard(ctx, p.db, project.Name(), card)
}

func (p *Postgres) RestoreUsers(ctx context.Context) ([]*board.User, error) {
	query :=
		`SELECT username, password_hash FROM users
		 ORDER BY created_at
		 `

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var users []*board.User
	for rows.Next() {
		u := &board.User{}
		if err := rows.Scan(&u.Name, &u.PasswordHash); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (p *Postgres) RestoreProjects(ctx context.Context) ([]*board.Project, error) {
	query :=
		`SELECT name, chat_addr FROM projects
		 ORDER BY created_at
		 `

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var projects []*board.Project
	for rows.Next() {
		var name, chatAddr string
		if err := rows.Scan(&name, &chatAddr); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		projects = append(projects, board.NewProject(name, chatAddr))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, project := range projects {
		if err := p.restoreMembers(ctx, project); err != nil {
			return nil, err
		}
		if err := p.restoreCards(ctx, project); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (p *Postgres) restoreMembers(ctx context.Context, project *board.Project) error {
	query :=
		`SELECT username FROM project_members
		 WHERE project_name = $1
		 ORDER BY position
		 `

	rows, err := p.db.QueryContext(ctx, query, project.Name())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	project.RestoreMembers(members)
	return nil
}

func (p *Postgres) restoreCards(ctx context.Context, project *board.Project) error {
	query :=
		`SELECT name, description, history FROM cards
		 WHERE project_name = $1
		 `

	rows, err := p.db.QueryContext(ctx, query, project.Name())
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name, description string
		var rawHistory []byte
		if err := rows.Scan(&name, &description, &rawHistory); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		var history []board.CardState
		if err := json.Unmarshal(rawHistory, &history); err != nil {
			return fmt.Errorf("card history decode error: %w", err)
		}
		project.RestoreCard(&board.Card{Name: name, Description: description, History: history})
	}
	return rows.Err()
}

func replaceMembers(ctx context.Context, tx dbx.DBTX, project *board.Project) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM project_members WHERE project_name = $1`, project.Name()); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	query :=
		`INSERT INTO project_members (project_name, username, position)
		 VALUES ($1, $2, $3)
		 `

	for i, member := range project.Members() {
		if _, err := tx.ExecContext(ctx, query, project.Name(), member, i); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}
	return nil
}

func upsertCard(ctx context.Context, tx dbx.DBTX, projectName string, card *board.Card) error {
	history, err := json.Marshal(card.History)
	if err != nil {
		return fmt.Errorf("card history encode error: %w", err)
	}

	query :=
		`INSERT INTO cards (project_name, name, description, history)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (project_name, name)
		 DO UPDATE SET description = EXCLUDED.description, history = EXCLUDED.history
		 `

	if _, err := tx.ExecContext(ctx, query, projectName, card.Name, card.Description, history); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
