// Package handlers holds the page handlers. Every page talks to the REST
// API through the session-bound client; none of them keep state.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/diewo77/smart-order/gate"
	"github.com/diewo77/smart-order/internal/api"
	"github.com/diewo77/smart-order/internal/events"
	"github.com/diewo77/smart-order/internal/logging"
	"github.com/diewo77/smart-order/internal/services"
	"github.com/diewo77/smart-order/internal/session"
)

// Env is shared by all handlers.
type Env struct {
	API    *api.Client
	Events events.Publisher
}

// Guard wraps a route with an authorization check for resource/action.
type Guard func(resource string, action gate.Action) func(http.Handler) http.Handler

// Open is a Guard that lets everything through.
func Open(string, gate.Action) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler { return h }
}

// client returns the API client bound to the request's session. Without
// a store the base client is returned as is; wrapping a nil *Store would
// give a non-nil Credentials that panics on use.
func (e *Env) client(r *http.Request) *api.Client {
	if store, ok := session.FromContext(r.Context()); ok {
		return e.API.WithCredentials(store)
	}
	return e.API
}

func (e *Env) workflow(r *http.Request) *services.OrderWorkflow {
	return services.NewOrderWorkflow(e.client(r), e.Events, logger(r))
}

func logger(r *http.Request) *slog.Logger {
	return logging.From(r.Context())
}
