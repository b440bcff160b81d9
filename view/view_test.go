package view

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/diewo77/smart-order/i18n"
)

func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRender_LayoutFuncsPerRequestLanguage(t *testing.T) {
	ResetForTests()
	t.Cleanup(ResetForTests)
	SetBaseDir(writeTemplates(t, map[string]string{
		"layout.html":         `<main>{{template "content" .}}</main>`,
		"page.html":           `{{define "content"}}{{t "common.delete"}} {{brl .Total}}{{template "alert" .}}{{end}}`,
		"partials/alert.html": `{{define "alert"}}{{with .Flash}}[{{.}}]{{end}}{{end}}`,
	}))
	SetFlashResolver(func(r *http.Request) string { return r.URL.Query().Get("f") })

	render := func(lang, url string) string {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		req = req.WithContext(i18n.WithLang(req.Context(), lang))
		rec := httptest.NewRecorder()
		if err := RenderStatus(rec, req, http.StatusOK, "page.html", map[string]any{"Total": decimal.RequireFromString("42.5")}); err != nil {
			t.Fatal(err)
		}
		return rec.Body.String()
	}

	if got := render("pt", "/?f=ok"); got != "<main>Deletar R$ 42,50[ok]</main>" {
		t.Fatalf("pt render = %q", got)
	}
	// second render comes from the cache and must still use its own language
	if got := render("en", "/"); got != "<main>Delete R$ 42,50</main>" {
		t.Fatalf("en render = %q", got)
	}
}

func TestRender_FullDocumentSkipsLayout(t *testing.T) {
	ResetForTests()
	t.Cleanup(ResetForTests)
	SetBaseDir(writeTemplates(t, map[string]string{
		"layout.html":  `LAYOUT`,
		"loading.html": `<!doctype html><p>{{t "common.loading"}}</p>`,
	}))
	rec := httptest.NewRecorder()
	if err := RenderStatus(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusServiceUnavailable, "loading.html", nil); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, "LAYOUT") || !strings.Contains(body, "Carregando...") {
		t.Fatalf("body = %q", body)
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	ResetForTests()
	t.Cleanup(ResetForTests)
	SetBaseDir(t.TempDir())
	rec := httptest.NewRecorder()
	if err := RenderStatus(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "nope.html", nil); err == nil {
		t.Fatal("expected error")
	}
	if rec.Body.Len() != 0 {
		t.Fatal("nothing should be written on error")
	}
}

func TestTitle(t *testing.T) {
	if Title("Mesas") != "Mesas | Smart Order" || Title("") != "Smart Order" {
		t.Fatal("unexpected titles")
	}
}
