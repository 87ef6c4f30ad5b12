// Package protocol implements the line-oriented TCP request protocol.
// Each connection gets its own session goroutine; requests are
// %-separated fields starting with a numeric opcode and responses start
// with a numeric result code (0 success, 1 bad syntax, 2 user error,
// 3 password error, 4 login-state error, 5 project error, 6 permission
// error, 7 card error).
package protocol

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrival/taskboard/internal/logging"
	"github.com/dmitrival/taskboard/internal/server/projects"
	"github.com/dmitrival/taskboard/internal/server/users"
)

type Server struct {
	address     string
	users       *users.Directory
	registry    *projects.Registry
	idleTimeout time.Duration
	logger      logging.Logger
}

func NewServer(address string, d *users.Directory, r *projects.Registry, idleTimeout time.Duration, logger logging.Logger) *Server {
	return &Server{
		address:     address,
		users:       d,
		registry:    r,
		idleTimeout: idleTimeout,
		logger:      logger.With("module", "protocol_server"),
	}
}

// Run accepts connections until ctx is cancelled. Sessions left running
// at shutdown terminate on their own: every read carries the idle
// deadline.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping protocol server...")
		_ = listener.Close()
	}()

	s.logger.Info(ctx, "Starting protocol server", "address", s.address)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}

		sess := newSession(conn, s.users, s.registry, s.idleTimeout,
			s.logger.With("session_id", uuid.NewString()))
		go sess.run(ctx)
	}
}
