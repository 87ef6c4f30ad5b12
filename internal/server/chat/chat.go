// Package chat posts best-effort system notices into a project's
// multicast chat channel. The server never reads the channel back.
package chat

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// Poster delivers one plain-text system notice to a chat channel
// address. Delivery is fire-and-forget; errors are for logging only.
type Poster interface {
	Post(ctx context.Context, chatAddr, user, action string) error
}

// Multicast posts notices as UDP datagrams to the project's multicast
// group on a fixed port, in the same format clients use for chat lines.
type Multicast struct {
	port int
}

func NewMulticast(port int) *Multicast {
	return &Multicast{port: port}
}

func (m *Multicast) Post(ctx context.Context, chatAddr, user, action string) error {
	conn, err := net.Dial("udp", net.JoinHostPort(chatAddr, strconv.Itoa(m.port)))
	if err != nil {
		return fmt.Errorf("dialing chat group: %w", err)
	}
	defer conn.Close()

	msg := fmt.Sprintf("[TASKBOARD]: %s %s", user, action)
	if _, err := conn.Write([]byte(msg)); err != nil {
		return fmt.Errorf("posting chat notice: %w", err)
	}
	return nil
}
