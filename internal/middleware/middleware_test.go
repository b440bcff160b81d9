package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diewo77/smart-order/internal/logging"
)

func TestPrefs_LanguageResolution(t *testing.T) {
	var got string
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { got = LangFrom(r) }))

	cases := []struct {
		name   string
		query  string
		cookie string
		accept string
		want   string
	}{
		{"default", "", "", "", "pt"},
		{"header", "", "", "en-US,en;q=0.9", "en"},
		{"cookie beats header", "", "pt", "en-US", "pt"},
		{"query beats cookie", "?lang=en", "pt", "", "en"},
		{"unsupported query ignored", "?lang=xx", "", "", "pt"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/"+c.query, nil)
			if c.cookie != "" {
				req.AddCookie(&http.Cookie{Name: langCookie, Value: c.cookie})
			}
			if c.accept != "" {
				req.Header.Set("Accept-Language", c.accept)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			if got != c.want {
				t.Fatalf("lang = %q, want %q", got, c.want)
			}
		})
	}
}

func TestFlash_RoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	Flash(rec, httptest.NewRequest(http.MethodPost, "/customers", nil), "customers.created")
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %v", cookies)
	}

	var msg string
	h := Prefs(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { msg = FlashFrom(r) }))
	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if msg != "Cliente cadastrado com sucesso!" {
		t.Fatalf("flash = %q", msg)
	}
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("flash cookie not cleared after reading")
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Format: "text"}, &buf)
	var sawLogger bool
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = logging.From(r.Context()) != slog.Default()
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tables", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
	if !sawLogger {
		t.Fatal("request logger not attached")
	}
	out := buf.String()
	if !strings.Contains(out, "status=418") || !strings.Contains(out, "path=/tables") {
		t.Fatalf("log line = %q", out)
	}
}

func TestRecover(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}
