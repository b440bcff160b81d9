// Package view renders the html/template pages. Pages are parsed together
// with layout.html and the shared partials; a page that is a full document
// (starts with a doctype) is rendered on its own.
package view

import (
	"bytes"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diewo77/smart-order/i18n"
	"github.com/diewo77/smart-order/internal/format"
)

// Principal is what templates know about the signed-in user.
type Principal struct {
	Name string
	Role string
}

var (
	baseDir  string
	once     sync.Once
	devMode  = os.Getenv("DEV") == "1"
	tplCache = struct {
		sync.RWMutex
		m map[string]*template.Template
	}{m: map[string]*template.Template{}}

	resolverMu        sync.RWMutex
	principalResolver = func(*http.Request) (Principal, bool) { return Principal{}, false }
	canResolver       = func(*http.Request, string, string) bool { return false }
	flashResolver     = func(*http.Request) string { return "" }
)

var partials = []string{
	"nav.html",
	"alert.html",
	"resource-table.html",
	"field-error.html",
}

// SetPrincipalResolver tells templates who is signed in.
func SetPrincipalResolver(f func(*http.Request) (Principal, bool)) {
	if f != nil {
		resolverMu.Lock()
		principalResolver = f
		resolverMu.Unlock()
	}
}

// SetCanResolver backs the "can" template func (resource, action).
func SetCanResolver(f func(*http.Request, string, string) bool) {
	if f != nil {
		resolverMu.Lock()
		canResolver = f
		resolverMu.Unlock()
	}
}

// SetFlashResolver supplies the one-shot flash message of a request.
func SetFlashResolver(f func(*http.Request) string) {
	if f != nil {
		resolverMu.Lock()
		flashResolver = f
		resolverMu.Unlock()
	}
}

// SetDevMode disables the template cache so edits show up on reload.
func SetDevMode(dev bool) { devMode = dev }

func detectBase() {
	for _, c := range []string{"templates", "../templates", "../../templates"} {
		if fi, err := os.Stat(filepath.Clean(c)); err == nil && fi.IsDir() {
			baseDir = filepath.Clean(c)
			return
		}
	}
	baseDir = "templates"
}

// SetBaseDir overrides the template base directory.
func SetBaseDir(path string) {
	if path == "" {
		return
	}
	baseDir = filepath.Clean(path)
}

// ResetForTests clears the cache and reruns base dir detection.
func ResetForTests() {
	tplCache.Lock()
	tplCache.m = map[string]*template.Template{}
	tplCache.Unlock()
	baseDir = ""
	once = sync.Once{}
}

// Funcs returns the template funcs bound to r.
func Funcs(r *http.Request) template.FuncMap {
	lang := i18n.LangFrom(r.Context())
	resolverMu.RLock()
	can := canResolver
	resolverMu.RUnlock()
	return template.FuncMap{
		"t":        func(code string) string { return i18n.T(lang, code) },
		"tf":       func(code string, args ...any) string { return i18n.Tf(lang, code, args...) },
		"lang":     func() string { return lang },
		"can":      func(resource, action string) bool { return can(r, resource, action) },
		"year":     func() int { return time.Now().Year() },
		"brl":      format.Currency,
		"date":     format.Date,
		"phone":    format.Phone,
		"category": format.Category,
		"dec": func(s string) decimal.Decimal {
			d, err := decimal.NewFromString(s)
			if err != nil {
				return decimal.Zero
			}
			return d
		},
		// dict builds a map for passing several values to a partial:
		// {{ template "field-error" (dict "Errors" .Errors "Field" "cpf") }}
		"dict": func(values ...any) map[string]any {
			if len(values)%2 != 0 {
				return nil
			}
			m := make(map[string]any, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				if key, ok := values[i].(string); ok {
					m[key] = values[i+1]
				}
			}
			return m
		},
	}
}

// parse builds the template set for name. The result is never executed
// directly; Render clones it so per-request funcs can be bound.
func parse(name string) (*template.Template, error) {
	mainPath := filepath.Join(baseDir, name)
	content, err := os.ReadFile(mainPath)
	if err != nil {
		return nil, err
	}
	if bytes.Contains(bytes.ToLower(content[:min(len(content), 64)]), []byte("<!doctype")) {
		return template.New(name).Funcs(Funcs(dummyRequest)).ParseFiles(mainPath)
	}
	files := []string{filepath.Join(baseDir, "layout.html"), mainPath}
	for _, p := range partials {
		pp := filepath.Join(baseDir, "partials", p)
		if fi, err := os.Stat(pp); err == nil && !fi.IsDir() {
			files = append(files, pp)
		}
	}
	return template.New("layout.html").Funcs(Funcs(dummyRequest)).ParseFiles(files...)
}

var dummyRequest, _ = http.NewRequest(http.MethodGet, "/", nil)

func lookup(name string) (*template.Template, error) {
	if !devMode {
		tplCache.RLock()
		t, ok := tplCache.m[name]
		tplCache.RUnlock()
		if ok {
			return t, nil
		}
	}
	t, err := parse(name)
	if err != nil {
		return nil, err
	}
	if !devMode {
		tplCache.Lock()
		tplCache.m[name] = t
		tplCache.Unlock()
	}
	return t, nil
}

// RenderStatus executes page name with data and writes it with status.
// Common keys (Year, Lang, Flash, Principal, IsLoggedIn) are filled in when
// absent. The page is rendered to a buffer first so a template error never
// leaves a half-written page.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) error {
	if baseDir == "" {
		once.Do(detectBase)
	}
	if data == nil {
		data = map[string]any{}
	}
	resolverMu.RLock()
	principal, flash := principalResolver, flashResolver
	resolverMu.RUnlock()
	setDefault(data, "Year", time.Now().Year())
	setDefault(data, "Lang", i18n.LangFrom(r.Context()))
	setDefault(data, "Flash", flash(r))
	if _, ok := data["Principal"]; !ok {
		p, loggedIn := principal(r)
		data["Principal"] = p
		data["IsLoggedIn"] = loggedIn
	}

	base, err := lookup(name)
	if err != nil {
		return err
	}
	t, err := base.Clone()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := t.Funcs(Funcs(r)).Execute(&buf, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

func setDefault(data map[string]any, key string, v any) {
	if _, ok := data[key]; !ok {
		data[key] = v
	}
}

// Title joins a page title with the application name.
func Title(page string) string {
	page = strings.TrimSpace(page)
	if page == "" {
		return "Smart Order"
	}
	return page + " | Smart Order"
}
