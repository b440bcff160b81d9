package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/diewo77/smart-order/auth"
	"github.com/diewo77/smart-order/gate"
	"github.com/diewo77/smart-order/httpx"
	"github.com/diewo77/smart-order/internal/handlers"
	"github.com/diewo77/smart-order/internal/middleware"
	"github.com/diewo77/smart-order/internal/policy"
	"github.com/diewo77/smart-order/internal/session"
	"github.com/diewo77/smart-order/view"
)

// App is the main application handler: health check, static assets and
// the role router in front of the public and management trees.
type App struct {
	mux       *http.ServeMux
	routerCfg *policy.RouterConfig
	handler   http.Handler
}

// NewApp creates a new application with all routes configured.
func NewApp(routerCfg *policy.RouterConfig, log *slog.Logger, restoreWait time.Duration) *App {
	app := &App{
		mux:       http.NewServeMux(),
		routerCfg: routerCfg,
	}
	// The view layer only sees resolver callbacks, never session or gate types.
	view.SetPrincipalResolver(func(r *http.Request) (view.Principal, bool) {
		store, ok := session.FromContext(r.Context())
		if !ok {
			return view.Principal{}, false
		}
		sess, ok := store.Current()
		if !ok {
			return view.Principal{}, false
		}
		return view.Principal{Name: sess.User.Name, Role: string(sess.User.Role)}, true
	})
	view.SetCanResolver(func(r *http.Request, resource, action string) bool {
		return routerCfg.Gate.Can(r.Context(), policy.RoleFrom(r.Context()), gate.Action(action), resource)
	})
	view.SetFlashResolver(middleware.FlashFrom)

	app.setupRoutes(log, restoreWait)
	app.handler = middleware.RequestLogger(log)(
		middleware.Recover(auth.Middleware(middleware.Prefs(app.mux))),
	)
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *App) setupRoutes(log *slog.Logger, restoreWait time.Duration) {
	a.mux.HandleFunc("GET /healthz", healthz)
	a.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir()))))

	// Everything else goes through the role router, which mounts exactly one
	// tree per request once the client's session is settled.
	a.mux.Handle("/", policy.NewRoleRouter(
		a.routerCfg.Registry,
		a.routerCfg.PublicRoutes(),
		a.routerCfg.ManagerRoutes(),
		policy.WithRestoreWait(restoreWait),
		policy.WithLoadingHandler(http.HandlerFunc(handlers.Loading)),
		policy.WithLogger(log),
	))
}

func healthz(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func staticDir() string {
	for _, c := range []string{"static", "../static", "../../static"} {
		if fi, err := os.Stat(c); err == nil && fi.IsDir() {
			return c
		}
	}
	return "static"
}
