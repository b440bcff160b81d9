package gate

import "strings"

// Permission is a "resource:action" pair, e.g. "orders:create".
type Permission string

const (
	Wildcard      = "*"
	PermissionAll Permission = "*:*"
)

// NewPermission builds the permission for action on resource.
func NewPermission(resource string, action Action) Permission {
	return Permission(resource + ":" + string(action))
}

// Split returns the resource and action parts; both are empty when malformed.
func (p Permission) Split() (string, Action) {
	res, act, ok := strings.Cut(string(p), ":")
	if !ok {
		return "", ""
	}
	return res, Action(act)
}

// Matches reports whether p grants requested. "*:*" grants everything,
// "orders:*" every action on orders and "*:list" list on every resource.
func (p Permission) Matches(requested Permission) bool {
	if p == PermissionAll || p == requested {
		return true
	}
	res, act := p.Split()
	reqRes, reqAct := requested.Split()
	if res == "" || reqRes == "" {
		return false
	}
	resOK := res == Wildcard || res == reqRes
	actOK := string(act) == Wildcard || act == reqAct
	return resOK && actOK
}
