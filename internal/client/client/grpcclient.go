package client

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrival/taskboard/internal/proto"
)

// GRPCClient wraps the registration and notification service.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.NotifierClient
}

func NewNotifierClient(endpointURL string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &GRPCClient{endpointURL: endpointURL, conn: conn, client: pb.NewNotifierClient(conn)}, nil
}

func (c *GRPCClient) Register(ctx context.Context, username, password string) (string, error) {
	resp, err := c.client.RegisterUser(ctx, &pb.RegisterUserRequest{Username: username, Password: password})
	if err != nil {
		return "", c.mapError(err)
	}
	return resp.GetMessage(), nil
}

// Subscribe opens the event stream and pumps events into handler from a
// background goroutine until the stream breaks or ctx is cancelled.
func (c *GRPCClient) Subscribe(ctx context.Context, username string, handler func(*pb.Event)) error {
	stream, err := c.client.Subscribe(ctx, &pb.SubscribeRequest{Username: username})
	if err != nil {
		return c.mapError(err)
	}

	go func() {
		for {
			event, err := stream.Recv()
			if err != nil {
				return
			}
			handler(event)
		}
	}()
	return nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists, codes.InvalidArgument, codes.NotFound:
		return errors.New(st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
