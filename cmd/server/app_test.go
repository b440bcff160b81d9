package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/diewo77/smart-order/internal/api"
	"github.com/diewo77/smart-order/internal/events"
	"github.com/diewo77/smart-order/internal/handlers"
	"github.com/diewo77/smart-order/internal/policy"
	"github.com/diewo77/smart-order/internal/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	upstream := http.NewServeMux()
	upstream.HandleFunc("POST /sessions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"token":"tok","user":{"id":"u1","name":"Ana","email":"ana@example.com","role":"user"}}`)
	})
	upstream.HandleFunc("GET /tables", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `[{"id":"t1","tableNumber":"12","status":"free"}]`)
	})
	apiSrv := httptest.NewServer(upstream)
	t.Cleanup(apiSrv.Close)

	client, err := api.New(apiSrv.URL, apiSrv.Client())
	if err != nil {
		t.Fatal(err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := session.NewRegistry(session.NewMemoryStorage().Factory(), "@smart-order", log)
	env := &handlers.Env{API: client, Events: events.Nop{}}
	app := NewApp(policy.NewRouterConfig(env, registry), log, time.Second)

	srv := httptest.NewServer(app)
	t.Cleanup(srv.Close)
	return srv
}

func browser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Client{Jar: jar}
}

func fetch(t *testing.T, c *http.Client, method, target string, form url.Values) (int, string) {
	t.Helper()
	var resp *http.Response
	var err error
	if method == http.MethodPost {
		resp, err = c.PostForm(target, form)
	} else {
		resp, err = c.Get(target)
	}
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	status, body := fetch(t, browser(t), http.MethodGet, srv.URL+"/healthz", nil)
	if status != http.StatusOK || !strings.Contains(body, `"status":"ok"`) {
		t.Fatalf("healthz = %d %s", status, body)
	}
}

func TestApp_SessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	c := browser(t)

	status, body := fetch(t, c, http.MethodGet, srv.URL+"/", nil)
	if status != http.StatusOK || !strings.Contains(body, `href="/signup"`) {
		t.Fatalf("anonymous root = %d\n%s", status, body)
	}

	// management routes do not exist without a session
	if status, _ := fetch(t, c, http.MethodGet, srv.URL+"/tables", nil); status != http.StatusNotFound {
		t.Fatalf("anonymous /tables = %d", status)
	}

	status, body = fetch(t, c, http.MethodPost, srv.URL+"/", url.Values{"email": {"ana@example.com"}, "password": {"x"}})
	if status != http.StatusOK || !strings.Contains(body, "Bem-vindo, Ana") {
		t.Fatalf("after sign-in = %d\n%s", status, body)
	}

	status, body = fetch(t, c, http.MethodGet, srv.URL+"/tables", nil)
	if status != http.StatusOK || !strings.Contains(body, "Mesas") || !strings.Contains(body, ">12<") {
		t.Fatalf("/tables = %d\n%s", status, body)
	}

	if status, _ := fetch(t, c, http.MethodGet, srv.URL+"/nowhere", nil); status != http.StatusNotFound {
		t.Fatalf("unknown path = %d", status)
	}

	status, body = fetch(t, c, http.MethodPost, srv.URL+"/logout", nil)
	if status != http.StatusOK || !strings.Contains(body, "Você saiu da sua conta.") {
		t.Fatalf("after logout = %d\n%s", status, body)
	}
	if status, _ := fetch(t, c, http.MethodGet, srv.URL+"/tables", nil); status != http.StatusNotFound {
		t.Fatalf("/tables after logout = %d", status)
	}
}
