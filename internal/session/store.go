// Package session keeps the authenticated principal and bearer token of
// each browser client, persisted so a restart restores it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/internal/schema"
)

// ErrNoSession is returned by operations that need a signed-in client.
var ErrNoSession = errors.New("session: no active session")

const restoreTimeout = 10 * time.Second

// Store holds the session of one client. It is created by a Registry and
// restored from storage exactly once, asynchronously.
type Store struct {
	storage   Storage
	namespace string
	log       *slog.Logger

	restoreOnce sync.Once
	readyOnce   sync.Once
	ready       chan struct{}

	mu      sync.RWMutex
	current *models.Session
	// touched is set by Save and Remove; a restore finishing afterwards
	// must not overwrite their outcome.
	touched bool

	// settled runs once the restore finishes, before Ready is closed.
	settled func(*Store)
}

// NewStore returns a store in the loading state. Call Start to restore.
func NewStore(storage Storage, namespace string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		storage:   storage,
		namespace: namespace,
		log:       log,
		ready:     make(chan struct{}),
	}
}

func (s *Store) userKey() string  { return s.namespace + ":user" }
func (s *Store) tokenKey() string { return s.namespace + ":token" }

// Start launches the restore in its own goroutine. Subsequent calls do
// nothing. The restore is detached from ctx cancellation so an aborted
// first request does not leave the store loading forever.
func (s *Store) Start(ctx context.Context) {
	s.restoreOnce.Do(func() {
		go s.restore(context.WithoutCancel(ctx))
	})
}

func (s *Store) restore(ctx context.Context) {
	defer s.settle()
	ctx, cancel := context.WithTimeout(ctx, restoreTimeout)
	defer cancel()

	sess, err := s.load(ctx)
	if err != nil {
		s.log.Warn("session restore failed", "error", err)
		return
	}
	if sess == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.touched {
		return
	}
	s.current = sess
	s.log.Debug("session restored", "user", sess.User.ID, "role", sess.User.Role)
}

// load returns nil without error when either entry is missing or the user
// entry does not describe a valid principal.
func (s *Store) load(ctx context.Context) (*models.Session, error) {
	rawUser, okUser, err := s.storage.Get(ctx, s.userKey())
	if err != nil {
		return nil, err
	}
	token, okToken, err := s.storage.Get(ctx, s.tokenKey())
	if err != nil {
		return nil, err
	}
	if !okUser || !okToken || token == "" {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Warn("discarding unreadable stored user", "error", err)
		return nil, nil
	}
	if err := schema.Validate(&user); err != nil {
		s.log.Warn("discarding invalid stored user", "error", err)
		return nil, nil
	}
	return &models.Session{Token: token, User: user}, nil
}

func (s *Store) settle() {
	if s.settled != nil {
		s.settled(s)
	}
	s.markReady()
}

func (s *Store) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// Ready is closed once the restore has completed.
func (s *Store) Ready() <-chan struct{} { return s.ready }

// Loading reports whether the restore is still running.
func (s *Store) Loading() bool {
	select {
	case <-s.ready:
		return false
	default:
		return true
	}
}

// Wait blocks until the restore completes or ctx is done.
func (s *Store) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Current returns the active session.
func (s *Store) Current() (models.Session, bool) {
	if s == nil {
		return models.Session{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// Authorization is the header value API calls attach, or "" when signed out.
func (s *Store) Authorization() string {
	sess, ok := s.Current()
	if !ok {
		return ""
	}
	return "Bearer " + sess.Token
}

// Save persists sess and makes it the active session.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	if err := schema.Validate(&sess); err != nil {
		return fmt.Errorf("session: invalid session: %w", err)
	}
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Set(ctx, s.userKey(), string(rawUser)); err != nil {
		return fmt.Errorf("session: persist user: %w", err)
	}
	if err := s.storage.Set(ctx, s.tokenKey(), sess.Token); err != nil {
		return fmt.Errorf("session: persist token: %w", err)
	}
	s.current = &sess
	s.touched = true
	s.markReady()
	return nil
}

// Remove clears the session in memory and in storage. The store is no
// longer loading afterwards, even if the restore had not finished.
func (s *Store) Remove(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.touched = true
	s.markReady()
	if err := s.storage.Delete(ctx, s.userKey(), s.tokenKey()); err != nil {
		return fmt.Errorf("session: clear storage: %w", err)
	}
	return nil
}

type ctxKey struct{}

// WithStore attaches the client's store to ctx.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the store attached by WithStore.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok && s != nil
}
