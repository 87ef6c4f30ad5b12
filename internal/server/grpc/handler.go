package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrival/taskboard/internal/common"
	pb "github.com/dmitrival/taskboard/internal/proto"
	"github.com/dmitrival/taskboard/internal/server/notify"
)

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password must not be empty")
	}

	if err := s.users.Register(ctx, req.Username, req.Password); err != nil {
		if errors.Is(err, common.ErrUserExists) {
			return nil, status.Error(codes.AlreadyExists, "user "+req.Username+" already exists")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterUserResponse{Message: "user " + req.Username + " registered"}, nil
}

// Subscribe pins the caller's event stream into the hub and holds it
// open until the client goes away. A re-subscribe replaces the previous
// stream; the stale one unpins itself only if it is still current.
func (s *GRPCServer) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.Event]) error {
	ctx := stream.Context()

	if req.Username == "" {
		return status.Error(codes.InvalidArgument, "username must not be empty")
	}
	if !s.users.Exists(req.Username) {
		return status.Error(codes.NotFound, "user "+req.Username+" is not registered")
	}

	endpoint := &streamEndpoint{stream: stream}
	s.hub.Register(req.Username, endpoint)
	s.logger.Info(ctx, "Subscriber attached", "username", req.Username)

	<-ctx.Done()

	s.hub.UnregisterEndpoint(req.Username, endpoint)
	s.logger.Info(ctx, "Subscriber detached", "username", req.Username)
	return nil
}

// streamEndpoint adapts the server stream to the hub's Endpoint.
type streamEndpoint struct {
	stream grpc.ServerStreamingServer[pb.Event]
}

func (e *streamEndpoint) Send(event notify.Event) error {
	return e.stream.Send(&pb.Event{
		Kind:     kindToProto(event.Kind),
		Project:  event.Project,
		ChatAddr: event.ChatAddr,
		Username: event.Username,
		Online:   event.Online,
	})
}

func kindToProto(kind notify.Kind) pb.EventKind {
	switch kind {
	case notify.KindChannelAssigned:
		return pb.EventKind_EVENT_KIND_CHANNEL_ASSIGNED
	case notify.KindProjectRemoved:
		return pb.EventKind_EVENT_KIND_PROJECT_REMOVED
	case notify.KindPresenceChanged:
		return pb.EventKind_EVENT_KIND_PRESENCE_CHANGED
	default:
		return pb.EventKind_EVENT_KIND_UNSPECIFIED
	}
}
