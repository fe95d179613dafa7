package session

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pattarapon/hr-console/internal"
)

// Identity is what the console derives from the bearer token payload. The
// signature is never verified here; the remote API is the authority and the
// decode exists for display and routing only.
type Identity struct {
	Username  string
	Role      string
	ExpiresAt time.Time
}

func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// Manager wraps a TokenStore and notifies subscribers whenever the
// credential changes, whether through this process or externally.
type Manager struct {
	store  TokenStore
	logger *slog.Logger

	mu     sync.Mutex
	subs   map[int]func()
	nextID int
}

func NewManager(store TokenStore, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		subs:   make(map[int]func()),
	}
}

func (m *Manager) Token() (string, bool) {
	return m.store.Get()
}

func (m *Manager) SetToken(token string) error {
	if err := m.store.Set(token); err != nil {
		return err
	}
	m.notify()
	return nil
}

func (m *Manager) ClearSession() error {
	if err := m.store.Clear(); err != nil {
		return err
	}
	m.notify()
	return nil
}

// Identity decodes the current token without verifying its signature.
// A malformed token yields a decode error; callers must treat the session
// as absent and clear it.
func (m *Manager) Identity() (Identity, error) {
	token, ok := m.store.Get()
	if !ok {
		return Identity{}, internal.NewDecodeError("no session token", nil)
	}
	return DecodeToken(token)
}

// DecodeToken extracts username, role, and expiry from a JWT payload.
func DecodeToken(token string) (Identity, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Identity{}, internal.NewDecodeError("malformed session token", err)
	}

	var id Identity
	if v, ok := claims["username"].(string); ok && v != "" {
		id.Username = v
	} else if v, ok := claims["sub"].(string); ok {
		id.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		id.Role = v
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, nil
}

// Subscribe registers a callback fired on any credential change. The
// returned function unsubscribes.
func (m *Manager) Subscribe(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// Recheck fires subscribers so they re-read the store. It is the
// window-focus analogue: callers invoke it when the console regains
// attention and stale identity must not linger.
func (m *Manager) Recheck() {
	m.notify()
}

func (m *Manager) notify() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Watch observes the token file for external writes and removals, the
// cross-tab storage-event analogue. Blocks until ctx is done. Only
// meaningful for a file-backed store.
func (m *Manager) Watch(ctx context.Context, store *FileTokenStore) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// watch the directory: editors and atomic writers replace the file
	if err := watcher.Add(filepath.Dir(store.Path())); err != nil {
		return err
	}

	m.logger.Info("watching session token for external changes", "path", store.Path())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != store.Path() {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				m.logger.Debug("session token changed externally", "op", event.Op.String())
				m.notify()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.logger.Warn("session token watcher error", "error", err)
		}
	}
}
