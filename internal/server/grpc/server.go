// Package grpc exposes the registration and notification service. User
// registration is a unary call; notifications are a server stream the
// client opens after logging in, through which the hub pushes chat
// channel assignments, project removals and presence changes.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrival/taskboard/internal/logging"
	pb "github.com/dmitrival/taskboard/internal/proto"
	"github.com/dmitrival/taskboard/internal/server/notify"
	"github.com/dmitrival/taskboard/internal/server/users"
)

type GRPCServer struct {
	pb.UnimplementedNotifierServer
	address string
	users   *users.Directory
	hub     *notify.Hub
	logger  logging.Logger
}

func NewGRPCServer(address string, d *users.Directory, hub *notify.Hub, logger logging.Logger) *GRPCServer {
	return &GRPCServer{
		address: address,
		users:   d,
		hub:     hub,
		logger:  logger.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer()
	pb.RegisterNotifierServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
