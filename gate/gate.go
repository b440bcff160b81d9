// Package gate answers "may this principal perform this action on this
// resource" by resolving the principal to a permission profile.
//
// The principal type is generic so callers can key profiles by a role name,
// a user id or a full claims struct:
//
//	g := gate.New[models.Role](resolver)
//	err := g.Authorize(ctx, role, gate.ActionCreate, "orders")
package gate

import "context"

// Gate is the central authorization checkpoint.
type Gate[U comparable] struct {
	resolver Resolver[U]
}

func New[U comparable](resolver Resolver[U]) *Gate[U] {
	return &Gate[U]{resolver: resolver}
}

// Authorize returns nil when principal may perform action on resource.
// A zero principal is always ErrUnauthorized; a principal without a
// profile is ErrNoProfile.
func (g *Gate[U]) Authorize(ctx context.Context, principal U, action Action, resource string) error {
	var zero U
	if principal == zero {
		return ErrUnauthorized
	}
	profile, ok := g.resolver.Resolve(ctx, principal)
	if !ok {
		return ErrNoProfile
	}
	if !profile.Allows(NewPermission(resource, action)) {
		return ErrUnauthorized
	}
	return nil
}

// Can is Authorize as a bool.
func (g *Gate[U]) Can(ctx context.Context, principal U, action Action, resource string) bool {
	return g.Authorize(ctx, principal, action, resource) == nil
}

// Profile exposes the resolved profile, mostly for diagnostics pages.
func (g *Gate[U]) Profile(ctx context.Context, principal U) (Profile, bool) {
	return g.resolver.Resolve(ctx, principal)
}
