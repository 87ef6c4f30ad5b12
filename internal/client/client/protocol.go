// Package client implements the transports the CLI talks through: the
// line protocol connection for board operations, the gRPC connection
// for registration and event push, and the multicast chat channels.
package client

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Opcodes of the wire protocol, mirrored from the server.
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

// ProtocolClient holds one line protocol session. Calls are synchronous
// request/response pairs; the type is not safe for concurrent use.
type ProtocolClient struct {
	conn   net.Conn
	reader *bufio.Reader
}

func DialProtocol(address string) (*ProtocolClient, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return &ProtocolClient{conn: conn, reader: bufio.NewReader(conn)}, nil
}

// do sends one request and returns the response payload after the
// result code. Any non-zero code becomes an error carrying the server's
// message.
func (c *ProtocolClient) do(op int, args ...string) (string, error) {
	fields := append([]string{strconv.Itoa(op)}, args...)
	if _, err := c.conn.Write([]byte(strings.Join(fields, "%") + "\n")); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	line, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	line = strings.TrimRight(line, "\n")

	codeField, payload, _ := strings.Cut(line, "%")
	code, err := strconv.Atoi(codeField)
	if err != nil {
		return "", fmt.Errorf("malformed response %q", line)
	}
	if code != 0 {
		return "", errors.New(payload)
	}
	return payload, nil
}

// LoginResult is the bootstrap state the server hands back on login.
type LoginResult struct {
	Message  string
	Projects map[string]string // project name to chat channel address
	Presence map[string]bool   // username to online flag
}

func (c *ProtocolClient) Login(username, password string) (*LoginResult, error) {
	payload, err := c.do(opLogin, username, password)
	if err != nil {
		return nil, err
	}

	parts := strings.SplitN(payload, "%", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed login response %q", payload)
	}

	result := &LoginResult{Message: parts[0]}
	if err := json.Unmarshal([]byte(parts[1]), &result.Projects); err != nil {
		return nil, fmt.Errorf("decoding project list: %w", err)
	}
	if err := json.Unmarshal([]byte(parts[2]), &result.Presence); err != nil {
		return nil, fmt.Errorf("decoding presence list: %w", err)
	}
	return result, nil
}

func (c *ProtocolClient) Logout(username string) error {
	_, err := c.do(opLogout, username)
	return err
}

func (c *ProtocolClient) ListProjects() ([]string, error) {
	return c.doStringList(opListProjects)
}

func (c *ProtocolClient) CreateProject(name string) error {
	_, err := c.do(opCreateProject, name)
	return err
}

func (c *ProtocolClient) AddMember(project, username string) error {
	_, err := c.do(opAddMember, project, username)
	return err
}

func (c *ProtocolClient) ShowMembers(project string) ([]string, error) {
	return c.doStringList(opShowMembers, project)
}

func (c *ProtocolClient) ShowCards(project string) ([]string, error) {
	return c.doStringList(opShowCards, project)
}

// CardInfo is one card as reported by the server.
type CardInfo struct {
	Name        string
	Description string
	State       string
}

func (c *ProtocolClient) ShowCard(project, card string) (*CardInfo, error) {
	payload, err := c.do(opShowCard, project, card)
	if err != nil {
		return nil, err
	}
	parts := strings.SplitN(payload, "%", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed card response %q", payload)
	}
	return &CardInfo{Name: parts[0], Description: parts[1], State: parts[2]}, nil
}

func (c *ProtocolClient) AddCard(project, card, description string) error {
	_, err := c.do(opAddCard, project, card, description)
	return err
}

func (c *ProtocolClient) MoveCard(project, card, state string) error {
	_, err := c.do(opMoveCard, project, card, state)
	return err
}

func (c *ProtocolClient) CardHistory(project, card string) ([]string, error) {
	return c.doStringList(opGetCardHistory, project, card)
}

func (c *ProtocolClient) CancelProject(project string) error {
	_, err := c.do(opCancelProject, project)
	return err
}

// Close tells the server the session is over and drops the connection.
func (c *ProtocolClient) Close() error {
	_, _ = c.conn.Write([]byte("quit\n"))
	return c.conn.Close()
}

func (c *ProtocolClient) doStringList(op int, args ...string) ([]string, error) {
	payload, err := c.do(op, args...)
	if err != nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, fmt.Errorf("decoding list: %w", err)
	}
	return list, nil
}
