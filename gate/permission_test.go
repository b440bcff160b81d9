package gate

import "testing"

func TestPermission_Split(t *testing.T) {
	res, act := NewPermission("orders", ActionCreate).Split()
	if res != "orders" || act != ActionCreate {
		t.Fatalf("got %q %q", res, act)
	}
	if res, act := Permission("broken").Split(); res != "" || act != "" {
		t.Fatalf("expected empty parts, got %q %q", res, act)
	}
}

func TestPermission_Matches(t *testing.T) {
	cases := []struct {
		have, want Permission
		ok         bool
	}{
		{PermissionAll, "tables:delete", true},
		{"tables:delete", "tables:delete", true},
		{"tables:*", "tables:create", true},
		{"tables:*", "orders:create", false},
		{"*:list", "waiters:list", true},
		{"*:list", "waiters:delete", false},
		{"tables:list", "tables:create", false},
		{"broken", "tables:list", false},
	}
	for _, c := range cases {
		if got := c.have.Matches(c.want); got != c.ok {
			t.Errorf("%s.Matches(%s) = %v, want %v", c.have, c.want, got, c.ok)
		}
	}
}
