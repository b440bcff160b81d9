package session

import (
	"context"
	"log/slog"
	"sync"
)

// Registry owns one Store per client id. Stores that restore without a
// session are dropped as soon as they settle, so only signed-in clients
// stay resident; their storage still answers the next restore.
type Registry struct {
	factory   StorageFactory
	namespace string
	log       *slog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry(factory StorageFactory, namespace string, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		factory:   factory,
		namespace: namespace,
		log:       log,
		stores:    make(map[string]*Store),
	}
}

// Get returns the client's store, creating it and starting its restore
// on first use.
func (r *Registry) Get(ctx context.Context, clientID string) *Store {
	r.mu.Lock()
	s, ok := r.stores[clientID]
	if !ok {
		s = NewStore(r.factory(clientID), r.namespace, r.log.With("client", clientID))
		s.settled = func(s *Store) { r.evictSignedOut(clientID, s) }
		r.stores[clientID] = s
	}
	r.mu.Unlock()
	s.Start(ctx)
	return s
}

func (r *Registry) evictSignedOut(clientID string, s *Store) {
	if _, ok := s.Current(); ok {
		return
	}
	r.mu.Lock()
	if r.stores[clientID] == s {
		delete(r.stores, clientID)
	}
	r.mu.Unlock()
}

// Forget drops the client's store; the next Get starts a fresh restore.
func (r *Registry) Forget(clientID string) {
	r.mu.Lock()
	delete(r.stores, clientID)
	r.mu.Unlock()
}

// Len is the number of live stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}
