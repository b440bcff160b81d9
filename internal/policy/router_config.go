package policy

import (
	"net/http"

	"github.com/diewo77/smart-order/gate"
	"github.com/diewo77/smart-order/internal/handlers"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/internal/session"
)

// RouterConfig holds the handlers and the role gate the route trees are
// built from.
type RouterConfig struct {
	Gate     *gate.Gate[models.Role]
	Registry *session.Registry
	Env      *handlers.Env

	AuthHandler    *handlers.AuthHandler
	OrderHandler   *handlers.OrderHandler
	PaymentHandler *handlers.PaymentHandler
}

func NewRouterConfig(env *handlers.Env, registry *session.Registry) *RouterConfig {
	return &RouterConfig{
		Gate:           NewRoleGate(),
		Registry:       registry,
		Env:            env,
		AuthHandler:    handlers.NewAuthHandler(env, registry),
		OrderHandler:   handlers.NewOrderHandler(env),
		PaymentHandler: handlers.NewPaymentHandler(env),
	}
}

// Guard checks routes against the role gate.
func (c *RouterConfig) Guard() handlers.Guard {
	return func(resource string, action gate.Action) func(http.Handler) http.Handler {
		return RequirePermission(c.Gate, resource, action)
	}
}

// PublicRoutes is the tree mounted without a session.
func (c *RouterConfig) PublicRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	ah := c.AuthHandler
	mux.HandleFunc("GET /{$}", ah.SignInPage)
	mux.HandleFunc("POST /{$}", ah.SignIn)
	mux.HandleFunc("GET /signup", ah.SignUpPage)
	mux.HandleFunc("POST /signup", ah.SignUp)
	mux.HandleFunc("/", handlers.NotFound)
	return mux
}

// ManagerRoutes is the tree mounted for admin and user alike.
func (c *RouterConfig) ManagerRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	guard := c.Guard()

	mux.HandleFunc("GET /{$}", handlers.Dashboard)
	mux.HandleFunc("GET /satisfaction", handlers.Satisfaction)
	mux.HandleFunc("POST /logout", c.AuthHandler.Logout)

	handlers.NewResourceHandler(c.Env, handlers.Tables()).Register(mux, guard)
	handlers.NewResourceHandler(c.Env, handlers.Waiters()).Register(mux, guard)
	handlers.NewResourceHandler(c.Env, handlers.Products()).Register(mux, guard)
	handlers.NewResourceHandler(c.Env, handlers.Customers()).Register(mux, guard)
	handlers.NewResourceHandler(c.Env, handlers.Orders(c.Env)).Register(mux, guard)
	handlers.NewResourceHandler(c.Env, handlers.Users()).Register(mux, guard)
	handlers.NewResourceHandler(c.Env, handlers.Payments()).Register(mux, guard)
	c.OrderHandler.Register(mux, guard)
	c.PaymentHandler.Register(mux, guard)

	mux.HandleFunc("/", handlers.NotFound)
	return mux
}
