package protocol

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrival/taskboard/internal/board"
	"github.com/dmitrival/taskboard/internal/common"
	"github.com/dmitrival/taskboard/internal/logging"
	"github.com/dmitrival/taskboard/internal/server/projects"
	"github.com/dmitrival/taskboard/internal/server/users"
)

// Result codes of the wire protocol.
const (
	codeOK = iota
	codeBadSyntax
	codeUserError
	codePasswordError
	codeLoginStateError
	codeProjectError
	codePermissionError
	codeCardError
)

// Opcodes of the wire protocol.
const (
	opLogin = iota
	opLogout
	opListProjects
	opCreateProject
	opAddMember
	opShowMembers
	opShowCards
	opShowCard
	opAddCard
	opMoveCard
	opGetCardHistory
	opCancelProject
)

type session struct {
	conn        net.Conn
	users       *users.Directory
	registry    *projects.Registry
	idleTimeout time.Duration
	logger      logging.Logger

	// username is bound at login and cleared at logout; it scopes every
	// project operation of this session.
	username string
}

func newSession(conn net.Conn, d *users.Directory, r *projects.Registry, idleTimeout time.Duration, logger logging.Logger) *session {
	return &session{
		conn:        conn,
		users:       d,
		registry:    r,
		idleTimeout: idleTimeout,
		logger:      logger,
	}
}

func (s *session) run(ctx context.Context) {
	defer s.teardown(ctx)

	s.logger.Debug(ctx, "session opened", "remote", s.conn.RemoteAddr().String())

	reader := bufio.NewReader(s.conn)
	for {
		if s.idleTimeout > 0 {
			_ = s.conn.SetReadDeadline(time.Now().Add(s.idleTimeout))
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				s.logger.Info(ctx, "session idle, closing", "user", s.username)
			}
			return
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "quit" {
			return
		}

		response := s.dispatch(ctx, line)
		if _, err := s.conn.Write([]byte(response + "\n")); err != nil {
			return
		}
	}
}

// teardown closes the connection and, when the session is still bound to
// a user, logs that user out exactly as a client-initiated logout would.
func (s *session) teardown(ctx context.Context) {
	if s.username != "" {
		if err := s.users.Logout(ctx, s.username); err != nil {
			s.logger.Debug(ctx, "forced logout failed", "user", s.username, "error", err.Error())
		}
		s.username = ""
	}
	_ = s.conn.Close()
	s.logger.Debug(ctx, "session closed")
}

func (s *session) dispatch(ctx context.Context, line string) string {
	fields := strings.Split(line, "%")

	op, err := strconv.Atoi(fields[0])
	if err != nil {
		return reply(codeBadSyntax, "Unknown operation")
	}
	args := fields[1:]

	switch op {
	case opLogin:
		return s.login(ctx, args)
	case opLogout:
		return s.logout(ctx, args)
	case opListProjects:
		return s.listProjects(ctx)
	case opCreateProject:
		return s.createProject(ctx, args)
	case opAddMember:
		return s.addMember(ctx, args)
	case opShowMembers:
		return s.showMembers(ctx, args)
	case opShowCards:
		return s.showCards(ctx, args)
	case opShowCard:
		return s.showCard(ctx, args)
	case opAddCard:
		return s.addCard(ctx, args)
	case opMoveCard:
		return s.moveCard(ctx, args)
	case opGetCardHistory:
		return s.cardHistory(ctx, args)
	case opCancelProject:
		return s.cancelProject(ctx, args)
	default:
		return reply(codeBadSyntax, "Unknown operation")
	}
}

// login binds the session to a user and returns, alongside the message,
// a JSON map of the user's projects to their chat addresses and a JSON
// presence map, so the client can bootstrap its view.
func (s *session) login(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	username, password := args[0], args[1]

	if err := s.users.Login(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			return reply(codeUserError, fmt.Sprintf("User %s is not registered", username))
		case errors.Is(err, common.ErrWrongPassword):
			return reply(codePasswordError, "Wrong password")
		case errors.Is(err, common.ErrAlreadyLoggedIn):
			return reply(codeLoginStateError, fmt.Sprintf("User %s is already logged in", username))
		default:
			return reply(codeBadSyntax, err.Error())
		}
	}

	s.username = username

	chatAddrs := make(map[string]string)
	for _, info := range s.registry.ListProjectsOf(ctx, username) {
		chatAddrs[info.Name] = info.ChatAddr
	}

	return reply(codeOK, "Logged in successfully",
		mustJSON(chatAddrs), mustJSON(s.users.SnapshotPresence()))
}

func (s *session) logout(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	username := args[0]

	if err := s.users.Logout(ctx, username); err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			return reply(codeUserError, fmt.Sprintf("User %s doesn't exist", username))
		case errors.Is(err, common.ErrAlreadyLoggedOut):
			return reply(codeLoginStateError, fmt.Sprintf("User %s is already logged out", username))
		default:
			return reply(codeBadSyntax, err.Error())
		}
	}

	s.username = ""
	return reply(codeOK, "Logged out successfully")
}

func (s *session) listProjects(ctx context.Context) string {
	names := make([]string, 0)
	for _, info := range s.registry.ListProjectsOf(ctx, s.username) {
		names = append(names, info.Name)
	}
	return reply(codeOK, mustJSON(names))
}

func (s *session) createProject(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	name := args[0]

	if err := s.registry.Create(ctx, name, s.username); err != nil {
		if errors.Is(err, common.ErrProjectExists) {
			return reply(codeProjectError, fmt.Sprintf("Project %s already exists", name))
		}
		return reply(codeBadSyntax, err.Error())
	}
	return reply(codeOK, "Project successfully created")
}

func (s *session) addMember(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	name, newMember := args[0], args[1]

	if !s.users.Exists(newMember) {
		return reply(codeUserError, fmt.Sprintf("User %s doesn't exist", newMember))
	}

	if err := s.registry.AddMember(ctx, name, newMember, s.username); err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyMember):
			return reply(codeUserError, fmt.Sprintf("User %s is already a member of project %s", newMember, name))
		default:
			return s.projectError(name, err)
		}
	}
	return reply(codeOK, "User successfully added")
}

func (s *session) showMembers(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	name := args[0]

	members, err := s.registry.ShowMembers(ctx, name, s.username)
	if err != nil {
		return s.projectError(name, err)
	}
	return reply(codeOK, mustJSON(members))
}

func (s *session) showCards(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	name := args[0]

	cards, err := s.registry.ShowCards(ctx, name, s.username)
	if err != nil {
		return s.projectError(name, err)
	}
	return reply(codeOK, mustJSON(cards))
}

func (s *session) showCard(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	name, cardName := args[0], args[1]

	card, err := s.registry.ShowCard(ctx, name, cardName, s.username)
	if err != nil {
		if errors.Is(err, common.ErrCardNotFound) {
			return reply(codeCardError, fmt.Sprintf("Card %s doesn't exist in project %s", cardName, name))
		}
		return s.projectError(name, err)
	}
	return reply(codeOK, card.Name, card.Description, string(card.State()))
}

func (s *session) addCard(ctx context.Context, args []string) string {
	if len(args) < 3 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	name, cardName, description := args[0], args[1], args[2]

	if err := s.registry.AddCard(ctx, name, cardName, description, s.username); err != nil {
		if errors.Is(err, common.ErrCardExists) {
			return reply(codeCardError, fmt.Sprintf("Card %s already exists in project %s", cardName, name))
		}
		return s.projectError(name, err)
	}
	return reply(codeOK, "Card successfully added")
}

func (s *session) moveCard(ctx context.Context, args []string) string {
	if len(args) < 3 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	name, cardName := args[0], args[1]

	dst, err := board.ParseCardState(args[2])
	if err != nil {
		return reply(codeCardError, "Invalid card state")
	}

	if err := s.registry.MoveCard(ctx, name, cardName, dst, s.username); err != nil {
		switch {
		case errors.Is(err, common.ErrCardNotFound):
			return reply(codeCardError, fmt.Sprintf("Card %s doesn't exist in project %s", cardName, name))
		case errors.Is(err, common.ErrIllegalMove):
			return reply(codeCardError, fmt.Sprintf("Can't move card %s to %s", cardName, dst))
		default:
			return s.projectError(name, err)
		}
	}
	return reply(codeOK, "Card successfully moved")
}

func (s *session) cardHistory(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	name, cardName := args[0], args[1]

	history, err := s.registry.CardHistory(ctx, name, cardName, s.username)
	if err != nil {
		if errors.Is(err, common.ErrCardNotFound) {
			return reply(codeCardError, fmt.Sprintf("Card %s doesn't exist in project %s", cardName, name))
		}
		return s.projectError(name, err)
	}
	return reply(codeOK, mustJSON(history))
}

func (s *session) cancelProject(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return reply(codeBadSyntax, "Bad request syntax")
	}
	name := args[0]

	if err := s.registry.Cancel(ctx, name, s.username); err != nil {
		if errors.Is(err, common.ErrProjectNotDone) {
			return reply(codePermissionError, fmt.Sprintf("Project %s has cards not yet done", name))
		}
		return s.projectError(name, err)
	}
	return reply(codeOK, "Project successfully deleted")
}

// projectError maps the shared existence/membership failures every
// project operation can produce.
func (s *session) projectError(name string, err error) string {
	switch {
	case errors.Is(err, common.ErrProjectNotFound):
		return reply(codeProjectError, fmt.Sprintf("Project %s doesn't exist", name))
	case errors.Is(err, common.ErrNotMember):
		return reply(codePermissionError, fmt.Sprintf("User %s is not a member of project %s", s.username, name))
	default:
		return reply(codeBadSyntax, err.Error())
	}
}

func reply(code int, parts ...string) string {
	return strings.Join(append([]string{strconv.Itoa(code)}, parts...), "%")
}

// mustJSON encodes payloads built from plain maps and slices of strings;
// encoding those cannot fail.
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
