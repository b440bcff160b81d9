package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIssueAndParseClient(t *testing.T) {
	rec := httptest.NewRecorder()
	id := IssueClient(rec)
	if id == "" {
		t.Fatal("expected client id")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	got, ok := ParseClient(req)
	if !ok || got != id {
		t.Fatalf("ParseClient = %q, %v; want %q", got, ok, id)
	}
}

func TestParseClient_RejectsForgedSignature(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: clientCookieName, Value: "5f0c7e55-0000-4000-8000-000000000000.bogus"})
	if _, ok := ParseClient(req); ok {
		t.Fatal("forged cookie accepted")
	}
}

func TestMiddleware_IssuesCookieOnce(t *testing.T) {
	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClientIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	first := seen
	cookies := rec.Result().Cookies()
	if first == "" || len(cookies) != 1 {
		t.Fatalf("expected issued client id and cookie, got %q %d", first, len(cookies))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if seen != first {
		t.Fatalf("client id changed: %q -> %q", first, seen)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("cookie reissued for a valid client")
	}
}
