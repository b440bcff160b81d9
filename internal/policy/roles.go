package policy

import (
	"context"
	"net/http"

	"github.com/diewo77/smart-order/gate"
	"github.com/diewo77/smart-order/httpx"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/internal/session"
)

// NewRoleGate resolves both roles to the same full-access profile. The
// management pages do not distinguish admin from user yet; narrowing the
// user profile is a product decision, not something to infer here.
func NewRoleGate() *gate.Gate[models.Role] {
	r := gate.NewStaticResolver[models.Role]()
	r.Set(models.RoleAdmin, gate.NewProfile("admin", gate.PermissionAll))
	r.Set(models.RoleUser, gate.NewProfile("user", gate.PermissionAll))
	return gate.New[models.Role](r)
}

// RoleFrom returns the role of the session attached to ctx, or "".
func RoleFrom(ctx context.Context) models.Role {
	store, ok := session.FromContext(ctx)
	if !ok {
		return ""
	}
	sess, ok := store.Current()
	if !ok {
		return ""
	}
	return sess.User.Role
}

// RequirePermission rejects requests whose role may not perform action
// on resource.
func RequirePermission(g *gate.Gate[models.Role], resource string, action gate.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := g.Authorize(r.Context(), RoleFrom(r.Context()), action, resource); err != nil {
				if httpx.WantsJSON(r) {
					httpx.JSONError(w, http.StatusForbidden, "forbidden", nil)
					return
				}
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
