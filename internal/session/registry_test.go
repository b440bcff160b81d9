package session

import (
	"context"
	"fmt"
	"testing"
)

// seed persists admin for clientID the way a sign-in would.
func seed(t *testing.T, mem *MemoryStorage, clientID string) {
	t.Helper()
	if err := started(t, mem.Factory()(clientID)).Save(context.Background(), admin); err != nil {
		t.Fatal(err)
	}
}

func TestRegistry_GetReusesStorePerClient(t *testing.T) {
	mem := NewMemoryStorage()
	seed(t, mem, "a")
	seed(t, mem, "b")
	r := NewRegistry(mem.Factory(), ns, nil)
	ctx := context.Background()

	a1 := r.Get(ctx, "a")
	if err := a1.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	a2 := r.Get(ctx, "a")
	b := r.Get(ctx, "b")
	if a1 != a2 {
		t.Fatal("expected same store for the same client")
	}
	if a1 == b {
		t.Fatal("clients share a store")
	}
	if err := b.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d", r.Len())
	}
}

func TestRegistry_DropsAnonymousClients(t *testing.T) {
	mem := NewMemoryStorage()
	seed(t, mem, "signed-in")
	r := NewRegistry(mem.Factory(), ns, nil)
	ctx := context.Background()

	for i := 0; i < 500; i++ {
		s := r.Get(ctx, fmt.Sprintf("anon-%d", i))
		if err := s.Wait(ctx); err != nil {
			t.Fatal(err)
		}
		if _, ok := s.Current(); ok {
			t.Fatal("anonymous client has a session")
		}
	}
	if err := r.Get(ctx, "signed-in").Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want only the signed-in client", r.Len())
	}
}

func TestRegistry_SaveAfterSettleIsRestoredNextTime(t *testing.T) {
	r := NewRegistry(NewMemoryStorage().Factory(), ns, nil)
	ctx := context.Background()

	s := r.Get(ctx, "a")
	if err := s.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, admin); err != nil {
		t.Fatal(err)
	}
	next := r.Get(ctx, "a")
	if err := next.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := next.Current(); !ok {
		t.Fatal("next store should restore the saved session")
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d", r.Len())
	}
}

func TestRegistry_ForgetStartsFresh(t *testing.T) {
	mem := NewMemoryStorage()
	seed(t, mem, "a")
	r := NewRegistry(mem.Factory(), ns, nil)
	ctx := context.Background()

	s := r.Get(ctx, "a")
	if err := s.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	r.Forget("a")
	if r.Len() != 0 {
		t.Fatalf("Len = %d after Forget", r.Len())
	}
	fresh := r.Get(ctx, "a")
	if fresh == s {
		t.Fatal("Forget kept the old store")
	}
	if err := fresh.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := fresh.Current(); !ok {
		t.Fatal("fresh store should restore the persisted session")
	}
}
