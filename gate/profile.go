package gate

import (
	"context"
	"sort"
	"sync"
)

// Profile is a named set of permissions.
type Profile struct {
	name  string
	perms map[Permission]struct{}
}

// NewProfile returns a profile granting perms.
func NewProfile(name string, perms ...Permission) Profile {
	p := Profile{name: name, perms: make(map[Permission]struct{}, len(perms))}
	for _, perm := range perms {
		p.perms[perm] = struct{}{}
	}
	return p
}

func (p Profile) Name() string { return p.name }

// Permissions returns the granted permissions in lexical order.
func (p Profile) Permissions() []Permission {
	out := make([]Permission, 0, len(p.perms))
	for perm := range p.perms {
		out = append(out, perm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Allows reports whether any granted permission matches requested.
func (p Profile) Allows(requested Permission) bool {
	for perm := range p.perms {
		if perm.Matches(requested) {
			return true
		}
	}
	return false
}

// Resolver maps a principal to its profile.
type Resolver[U comparable] interface {
	Resolve(ctx context.Context, principal U) (Profile, bool)
}

// StaticResolver is an in-memory principal → profile table.
type StaticResolver[U comparable] struct {
	mu       sync.RWMutex
	profiles map[U]Profile
}

func NewStaticResolver[U comparable]() *StaticResolver[U] {
	return &StaticResolver[U]{profiles: make(map[U]Profile)}
}

// Set assigns profile to principal, replacing any previous assignment.
func (r *StaticResolver[U]) Set(principal U, profile Profile) {
	r.mu.Lock()
	r.profiles[principal] = profile
	r.mu.Unlock()
}

func (r *StaticResolver[U]) Resolve(_ context.Context, principal U) (Profile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[principal]
	return p, ok
}
