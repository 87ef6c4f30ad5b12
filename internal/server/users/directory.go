// Package users holds the registered-user directory: credentials and
// online/offline presence. All mutations are serialized by one mutex and
// presence changes are published to the notification hub after the lock
// is released.
package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrival/taskboard/internal/board"
	"github.com/dmitrival/taskboard/internal/common"
	"github.com/dmitrival/taskboard/internal/logging"
	"github.com/dmitrival/taskboard/internal/server/notify"
	"github.com/dmitrival/taskboard/internal/server/storage"
)

type Directory struct {
	mu     sync.Mutex
	users  map[string]*board.User
	store  storage.Storage
	hub    *notify.Hub
	logger logging.Logger
}

// NewDirectory builds the directory from users restored out of storage.
// Restored users always start offline.
func NewDirectory(restored []*board.User, store storage.Storage, hub *notify.Hub, logger logging.Logger) *Directory {
	users := make(map[string]*board.User, len(restored))
	for _, u := range restored {
		u.Online = false
		users[u.Name] = u
	}
	return &Directory{
		users:  users,
		store:  store,
		hub:    hub,
		logger: logger.With("module", "user_directory"),
	}
}

// Register creates an offline user with the given password hashed.
// Subscribers are told about the new (offline) peer so their presence
// views stay complete.
func (d *Directory) Register(ctx context.Context, username, password string) error {
	user, err := board.NewUser(username, password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	d.mu.Lock()
	if _, ok := d.users[username]; ok {
		d.mu.Unlock()
		return common.ErrUserExists
	}
	d.users[username] = user

	if err := d.store.AddUser(ctx, user); err != nil {
		// persistence faults are not surfaced to the caller
		d.logger.Error(ctx, "persisting user failed", "user", username, "error", err.Error())
	}
	d.mu.Unlock()

	d.hub.NotifyPresenceChanged(ctx, username, false)
	return nil
}

// Login flips the user online after verifying the password.
func (d *Directory) Login(ctx context.Context, username, password string) error {
	d.mu.Lock()
	user, ok := d.users[username]
	if !ok {
		d.mu.Unlock()
		return common.ErrUserNotFound
	}
	if user.Online {
		d.mu.Unlock()
		return common.ErrAlreadyLoggedIn
	}
	if !user.CheckPassword(password) {
		d.mu.Unlock()
		return common.ErrWrongPassword
	}
	user.Online = true
	d.mu.Unlock()

	d.hub.NotifyPresenceChanged(ctx, username, true)
	return nil
}

// Logout flips the user offline. The protocol layer calls this both for
// client-initiated logouts and for idle-session teardown.
func (d *Directory) Logout(ctx context.Context, username string) error {
	d.mu.Lock()
	user, ok := d.users[username]
	if !ok {
		d.mu.Unlock()
		return common.ErrUserNotFound
	}
	if !user.Online {
		d.mu.Unlock()
		return common.ErrAlreadyLoggedOut
	}
	user.Online = false
	d.mu.Unlock()

	d.hub.NotifyPresenceChanged(ctx, username, false)
	return nil
}

// Exists reports whether username is registered.
func (d *Directory) Exists(username string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.users[username]
	return ok
}

// SnapshotPresence returns every username mapped to its online flag,
// used to seed a freshly connected session's peer view.
func (d *Directory) SnapshotPresence() map[string]bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	presence := make(map[string]bool, len(d.users))
	for name, u := range d.users {
		presence[name] = u.Online
	}
	return presence
}
