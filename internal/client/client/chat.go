package client

import (
	"fmt"
	"net"
	"strconv"
	"sync"
)

// ChatListener manages the client's multicast chat memberships, one UDP
// group per project. Incoming datagrams are buffered per project and
// drained on demand; every Leave and Close path closes the sockets so
// reader goroutines terminate.
type ChatListener struct {
	port   int
	mu     sync.Mutex
	groups map[string]*chatGroup
}

type chatGroup struct {
	addr string
	conn *net.UDPConn

	mu       sync.Mutex
	messages []string
}

func NewChatListener(port int) *ChatListener {
	return &ChatListener{port: port, groups: make(map[string]*chatGroup)}
}

// Join subscribes to the project's chat group. Joining a project twice
// is a no-op.
func (l *ChatListener) Join(project, chatAddr string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.groups[project]; ok {
		return nil
	}

	ip := net.ParseIP(chatAddr)
	if ip == nil {
		return fmt.Errorf("invalid chat address %q", chatAddr)
	}

	conn, err := net.ListenMulticastUDP("udp", nil, &net.UDPAddr{IP: ip, Port: l.port})
	if err != nil {
		return fmt.Errorf("joining chat group %s: %w", chatAddr, err)
	}

	g := &chatGroup{addr: chatAddr, conn: conn}
	l.groups[project] = g
	go g.readLoop()
	return nil
}

// Leave closes the project's chat socket and drops its buffer.
func (l *ChatListener) Leave(project string) {
	l.mu.Lock()
	g, ok := l.groups[project]
	if ok {
		delete(l.groups, project)
	}
	l.mu.Unlock()

	if ok {
		_ = g.conn.Close()
	}
}

// Read drains and returns the buffered messages for the project.
func (l *ChatListener) Read(project string) ([]string, error) {
	l.mu.Lock()
	g, ok := l.groups[project]
	l.mu.Unlock()
	if !ok {
		return nil, ErrNotJoined
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	out := g.messages
	g.messages = nil
	return out, nil
}

// Send posts a chat message to the project's group as "user: text".
func (l *ChatListener) Send(project, user, text string) error {
	l.mu.Lock()
	g, ok := l.groups[project]
	l.mu.Unlock()
	if !ok {
		return ErrNotJoined
	}

	conn, err := net.Dial("udp", net.JoinHostPort(g.addr, strconv.Itoa(l.port)))
	if err != nil {
		return fmt.Errorf("dialing chat group: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(user + ": " + text)); err != nil {
		return fmt.Errorf("sending chat message: %w", err)
	}
	return nil
}

// Close leaves every group.
func (l *ChatListener) Close() {
	l.mu.Lock()
	groups := l.groups
	l.groups = make(map[string]*chatGroup)
	l.mu.Unlock()

	for _, g := range groups {
		_ = g.conn.Close()
	}
}

func (g *chatGroup) readLoop() {
	buf := make([]byte, 2048)
	for {
		n, _, err := g.conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		g.mu.Lock()
		g.messages = append(g.messages, string(buf[:n]))
		g.mu.Unlock()
	}
}
