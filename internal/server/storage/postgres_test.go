package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrival/taskboard/internal/board"
)

func newMockStorage(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgres(db), mock
}

func TestPostgres_AddUser(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u, err := board.NewUser("alice", "secret")
	require.NoError(t, err)

	require.NoError(t, s.AddUser(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_AddProject_WritesProjectMembersAndCards(t *testing.T) {
	s, mock := newMockStorage(t)

	p := board.NewProject("p1", "239.1.2.3")
	require.NoError(t, p.AddMember("alice"))
	require.NoError(t, p.AddCard("task1", "desc"))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO projects").
		WithArgs("p1", "239.1.2.3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM project_members").
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO project_members").
		WithArgs("p1", "alice", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cards").
		WithArgs("p1", "task1", "desc", []byte(`["TODO"]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.AddProject(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateCard(t *testing.T) {
	s, mock := newMockStorage(t)

	p := board.NewProject("p1", "239.1.2.3")
	require.NoError(t, p.AddCard("task1", "desc"))
	require.NoError(t, p.MoveCard("task1", board.StateInProgress))
	card, err := p.Card("task1")
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO cards").
		WithArgs("p1", "task1", "desc", []byte(`["TODO","INPROGRESS"]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.UpdateCard(context.Background(), p, card))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_RestoreProjects(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT name, chat_addr FROM projects").
		WillReturnRows(sqlmock.NewRows([]string{"name", "chat_addr"}).
			AddRow("p1", "239.1.2.3"))
	mock.ExpectQuery("SELECT username FROM project_members").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"username"}).
			AddRow("alice").
			AddRow("bob"))
	mock.ExpectQuery("SELECT name, description, history FROM cards").
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"name", "description", "history"}).
			AddRow("task1", "desc", []byte(`["TODO","INPROGRESS","DONE"]`)))

	projects, err := s.RestoreProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)

	p := projects[0]
	assert.Equal(t, "p1", p.Name())
	assert.Equal(t, []string{"alice", "bob"}, p.Members())
	history, err := p.CardHistory("task1")
	require.NoError(t, err)
	assert.Equal(t, board.StateDone, history[len(history)-1])
	assert.True(t, p.IsFinished())
}

func TestPostgres_DelProject(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec("DELETE FROM projects").
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DelProject(context.Background(), board.NewProject("p1", "239.1.2.3")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
