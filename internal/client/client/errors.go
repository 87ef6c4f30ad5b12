package client

import "errors"

var (
	// ErrNotJoined is returned for chat operations on a project whose
	// multicast group this client has not joined.
	ErrNotJoined = errors.New("chat channel not joined")

	// ErrUnavailable indicates the server could not be reached.
	ErrUnavailable = errors.New("server unavailable")
)
