// Package cli implements the interactive taskboard client: a REPL over
// the line protocol, a gRPC subscription for pushed board events, and
// multicast chat membership that follows the user's projects.
package cli

import (
	"bufio"
	"context"
	"os"
	"sync"

	"github.com/dmitrival/taskboard/internal/client/client"
	"github.com/dmitrival/taskboard/internal/client/config"
	pb "github.com/dmitrival/taskboard/internal/proto"
)

type App struct {
	config   *config.Config
	api      *client.ProtocolClient
	notifier *client.GRPCClient
	chat     *client.ChatListener
	reader   *bufio.Reader

	mu        sync.Mutex
	userName  string
	presence  map[string]bool
	projects  map[string]string // project name to chat channel address
	cancelSub context.CancelFunc
}

func NewApp(c *config.Config) (*App, error) {

	api, err := client.DialProtocol(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	notifier, err := client.NewNotifierClient(c.GRPCEndpointAddr)
	if err != nil {
		_ = api.Close()
		return nil, err
	}

	return &App{
		config:   c,
		api:      api,
		notifier: notifier,
		chat:     client.NewChatListener(c.ChatPort),
		reader:   bufio.NewReader(os.Stdin),
		presence: make(map[string]bool),
		projects: make(map[string]string),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.shutdown()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName != ""
}

func (a *App) currentUser() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName
}

// handleEvent applies one pushed event to the local view. Channel
// assignments also join the chat group; removals leave it.
func (a *App) handleEvent(event *pb.Event) {
	switch event.GetKind() {
	case pb.EventKind_EVENT_KIND_CHANNEL_ASSIGNED:
		a.mu.Lock()
		a.projects[event.GetProject()] = event.GetChatAddr()
		a.mu.Unlock()
		if err := a.chat.Join(event.GetProject(), event.GetChatAddr()); err != nil {
			printWarning("Could not join chat of %s: %v\n", event.GetProject(), err)
		}
		printNotice("You were added to project %s\n", event.GetProject())

	case pb.EventKind_EVENT_KIND_PROJECT_REMOVED:
		a.mu.Lock()
		delete(a.projects, event.GetProject())
		a.mu.Unlock()
		a.chat.Leave(event.GetProject())
		printNotice("Project %s was deleted\n", event.GetProject())

	case pb.EventKind_EVENT_KIND_PRESENCE_CHANGED:
		a.mu.Lock()
		a.presence[event.GetUsername()] = event.GetOnline()
		a.mu.Unlock()
	}
}

// bootstrap installs the state the server handed back on login and
// opens the event subscription.
func (a *App) bootstrap(ctx context.Context, username string, result *client.LoginResult) error {
	a.mu.Lock()
	a.userName = username
	a.presence = result.Presence
	a.projects = result.Projects
	a.mu.Unlock()

	for project, chatAddr := range result.Projects {
		if err := a.chat.Join(project, chatAddr); err != nil {
			printWarning("Could not join chat of %s: %v\n", project, err)
		}
	}

	subCtx, cancel := context.WithCancel(ctx)
	if err := a.notifier.Subscribe(subCtx, username, a.handleEvent); err != nil {
		cancel()
		return err
	}
	a.mu.Lock()
	a.cancelSub = cancel
	a.mu.Unlock()
	return nil
}

// teardown drops the per-login state: subscription, chat memberships,
// presence view.
func (a *App) teardown() {
	a.mu.Lock()
	cancel := a.cancelSub
	a.cancelSub = nil
	a.userName = ""
	a.presence = make(map[string]bool)
	a.projects = make(map[string]string)
	a.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	a.chat.Close()
}

func (a *App) shutdown() {
	if user := a.currentUser(); user != "" {
		_ = a.api.Logout(user)
	}
	a.teardown()
	_ = a.api.Close()
	_ = a.notifier.Close()
}
