// Package policy decides which route tree serves a request, based on the
// client's session, and guards routes with the role gate.
package policy

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/diewo77/smart-order/auth"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/internal/session"
)

// State is the routing state of a client.
type State string

const (
	StateLoading         State = "loading"
	StateUnauthenticated State = "unauthenticated"
)

// Authenticated is the state of a client signed in with role.
func Authenticated(role models.Role) State {
	return State("authenticated:" + string(role))
}

// StateOf reports the routing state of store.
func StateOf(store *session.Store) State {
	if store.Loading() {
		return StateLoading
	}
	sess, ok := store.Current()
	if !ok {
		return StateUnauthenticated
	}
	return Authenticated(sess.User.Role)
}

// RoleRouter mounts exactly one route tree per request: nothing while the
// session is restoring, the public tree without a session and the
// management tree for admin and user.
type RoleRouter struct {
	registry *session.Registry
	public   http.Handler
	manager  http.Handler
	loading  http.Handler
	wait     time.Duration
	log      *slog.Logger
}

type RouterOption func(*RoleRouter)

// WithRestoreWait sets how long a request waits for a restoring session
// before the loading page is shown.
func WithRestoreWait(d time.Duration) RouterOption {
	return func(rr *RoleRouter) { rr.wait = d }
}

// WithLoadingHandler replaces the default loading answer.
func WithLoadingHandler(h http.Handler) RouterOption {
	return func(rr *RoleRouter) { rr.loading = h }
}

func WithLogger(l *slog.Logger) RouterOption {
	return func(rr *RoleRouter) { rr.log = l }
}

func NewRoleRouter(registry *session.Registry, public, manager http.Handler, opts ...RouterOption) *RoleRouter {
	rr := &RoleRouter{
		registry: registry,
		public:   public,
		manager:  manager,
		loading: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "loading", http.StatusServiceUnavailable)
		}),
		wait: 2 * time.Second,
		log:  slog.Default(),
	}
	for _, o := range opts {
		o(rr)
	}
	return rr
}

// Tree returns the handler for a settled state. Loading has no tree.
func (rr *RoleRouter) Tree(state State) http.Handler {
	switch state {
	case StateLoading:
		return nil
	case Authenticated(models.RoleAdmin), Authenticated(models.RoleUser):
		return rr.manager
	default:
		return rr.public
	}
}

func (rr *RoleRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clientID, ok := auth.ClientIDFromContext(r.Context())
	if !ok {
		rr.public.ServeHTTP(w, r)
		return
	}
	store := rr.registry.Get(r.Context(), clientID)
	if store.Loading() && rr.wait > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), rr.wait)
		_ = store.Wait(ctx)
		cancel()
	}
	state := StateOf(store)
	tree := rr.Tree(state)
	if tree == nil {
		rr.log.Debug("session still restoring", "client", clientID)
		rr.loading.ServeHTTP(w, r)
		return
	}
	tree.ServeHTTP(w, r.WithContext(session.WithStore(r.Context(), store)))
}
