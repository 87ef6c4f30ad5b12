// Package server initializes and runs the taskboard server. It selects
// the storage backend, restores users and projects, wires the managers
// to the notification hub and chat poster, handles graceful shutdown,
// and starts the line protocol and gRPC endpoints.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrival/taskboard/internal/logging"
	"github.com/dmitrival/taskboard/internal/server/chat"
	"github.com/dmitrival/taskboard/internal/server/config"
	"github.com/dmitrival/taskboard/internal/server/notify"
	"github.com/dmitrival/taskboard/internal/server/projects"
	"github.com/dmitrival/taskboard/internal/server/protocol"
	"github.com/dmitrival/taskboard/internal/server/storage"
	"github.com/dmitrival/taskboard/internal/server/users"

	gs "github.com/dmitrival/taskboard/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	hub       *notify.Hub
	directory *users.Directory
	registry  *projects.Registry
	closeDB   func() error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	var store storage.Storage
	var closeDB func() error

	if cfg.DatabaseDSN == "" {
		logger.Info(ctx, "No database DSN, state will not survive restarts")
		store = storage.NewMemory()
	} else {
		pg, err := storage.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		store = pg
		closeDB = pg.Close
	}

	restoredUsers, err := store.RestoreUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("restoring users: %w", err)
	}
	restoredProjects, err := store.RestoreProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("restoring projects: %w", err)
	}

	hub := notify.NewHub(logger)
	directory := users.NewDirectory(restoredUsers, store, hub, logger)
	registry := projects.NewRegistry(restoredProjects, projects.NewAllocator(), store,
		hub, chat.NewMulticast(cfg.ChatPort), logger)

	logger.Info(ctx, "State restored",
		"users", len(restoredUsers), "projects", len(restoredProjects))

	return &App{
		config:    cfg,
		logger:    logger,
		hub:       hub,
		directory: directory,
		registry:  registry,
		closeDB:   closeDB,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startProtocolServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := protocol.NewServer(app.config.EndpointAddrProtocol, app.directory, app.registry,
		app.config.IdleTimeout, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.directory, app.hub, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startProtocolServer(ctx, cancelFunc)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.closeDB != nil {
		if err := app.closeDB(); err != nil {
			app.logger.Error(ctx, "closing database", "error", err.Error())
		}
	}
}
