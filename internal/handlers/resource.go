package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/diewo77/smart-order/gate"
	"github.com/diewo77/smart-order/i18n"
	"github.com/diewo77/smart-order/internal/api"
	"github.com/diewo77/smart-order/internal/middleware"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/validation"
	"github.com/diewo77/smart-order/view"
)

// Column projects one table column out of a record.
type Column[T any] struct {
	Header string // catalog code
	Value  func(T) string
	// Link, when set, turns the cell into a link.
	Link func(T) string
}

// Field describes one input of a create form.
type Field struct {
	Name    string
	Label   string // catalog code
	Type    string // text, email, tel, number, select
	Options []models.Option
}

// Row is a projected record ready for the resource table partial.
type Row struct {
	ID    string
	Cells []Cell
}

type Cell struct {
	Text string
	Link string
}

// Resource describes one CRUD screen. Name is both the route segment and
// the catalog prefix ("tables" -> "tables.title", "tables.created", ...).
type Resource[T any] struct {
	Name     string
	APIPath  string
	Template string
	ID       func(T) string
	Columns  []Column[T]
	Fields   []Field

	// Options fills select fields whose choices come from the API.
	Options func(ctx context.Context, c *api.Client) (map[string][]models.Option, error)
	// Create submits the form. Nil makes the screen list and delete only.
	Create func(ctx context.Context, c *api.Client, form url.Values) error
	// Remove overrides the plain DELETE.
	Remove func(ctx context.Context, c *api.Client, id string) error

	// EmptyOnBadRequest treats a 400 on list as no records.
	EmptyOnBadRequest bool
	// Ack shows an acknowledgment page after create and delete instead of
	// redirecting with a flash message.
	Ack bool
}

// ResourceHandler serves the list, create and delete routes of a Resource.
type ResourceHandler[T any] struct {
	env *Env
	res Resource[T]
}

func NewResourceHandler[T any](env *Env, res Resource[T]) *ResourceHandler[T] {
	if res.Template == "" {
		res.Template = "resource.html"
	}
	return &ResourceHandler[T]{env: env, res: res}
}

// Register mounts GET /name, POST /name and POST /name/{id}/delete.
func (h *ResourceHandler[T]) Register(mux *http.ServeMux, guard Guard) {
	name := h.res.Name
	mux.Handle("GET /"+name, guard(name, gate.ActionList)(http.HandlerFunc(h.List)))
	if h.res.Create != nil {
		mux.Handle("POST /"+name, guard(name, gate.ActionCreate)(http.HandlerFunc(h.Create)))
	}
	mux.Handle("POST /"+name+"/{id}/delete", guard(name, gate.ActionDelete)(http.HandlerFunc(h.Delete)))
}

func (h *ResourceHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, nil, nil, "")
}

func (h *ResourceHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	if h.res.Create == nil {
		NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	lang := middleware.LangFrom(r)
	if err := h.res.Create(r.Context(), h.env.client(r), r.PostForm); err != nil {
		var verr *validation.Error
		if !errors.As(err, &verr) {
			logger(r).Error("create failed", "resource", h.res.Name, "error", err)
		}
		h.render(w, r, statusFor(err), r.PostForm, err, describe(lang, "error.create", h.noun(lang), err))
		return
	}
	h.done(w, r, "created")
}

// Delete is the destructive-action gate: without confirm=yes it only asks.
func (h *ResourceHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	lang := middleware.LangFrom(r)
	if r.FormValue("confirm") != "yes" {
		Confirm(w, r, i18n.T(lang, h.res.Name+".confirm_delete"), r.URL.Path, "/"+h.res.Name, nil)
		return
	}
	remove := h.res.Remove
	if remove == nil {
		remove = func(ctx context.Context, c *api.Client, id string) error {
			return api.Delete(ctx, c, h.res.APIPath, id)
		}
	}
	if err := remove(r.Context(), h.env.client(r), id); err != nil {
		logger(r).Error("delete failed", "resource", h.res.Name, "id", id, "error", err)
		h.render(w, r, statusFor(err), nil, nil, describe(lang, "error.delete", h.noun(lang), err))
		return
	}
	h.done(w, r, "deleted")
}

func (h *ResourceHandler[T]) done(w http.ResponseWriter, r *http.Request, event string) {
	code := h.res.Name + "." + event
	if h.res.Ack {
		Ack(w, r, i18n.T(middleware.LangFrom(r), code), "/"+h.res.Name)
		return
	}
	middleware.Flash(w, r, code)
	http.Redirect(w, r, "/"+h.res.Name, http.StatusSeeOther)
}

func (h *ResourceHandler[T]) noun(lang string) string {
	return i18n.T(lang, h.res.Name+".noun")
}

// list fetches the collection. The result is always non-nil on success.
func (h *ResourceHandler[T]) list(ctx context.Context, c *api.Client) ([]T, error) {
	if h.res.EmptyOnBadRequest {
		return api.ListOrEmpty[T](ctx, c, h.res.APIPath)
	}
	return api.List[T](ctx, c, h.res.APIPath)
}

func (h *ResourceHandler[T]) rows(items []T) []Row {
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		row := Row{ID: h.res.ID(it), Cells: make([]Cell, len(h.res.Columns))}
		for i, col := range h.res.Columns {
			row.Cells[i].Text = col.Value(it)
			if col.Link != nil {
				row.Cells[i].Link = col.Link(it)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (h *ResourceHandler[T]) fields(ctx context.Context, c *api.Client) ([]Field, error) {
	if h.res.Create == nil {
		return nil, nil
	}
	fields := make([]Field, len(h.res.Fields))
	copy(fields, h.res.Fields)
	if h.res.Options == nil {
		return fields, nil
	}
	opts, err := h.res.Options(ctx, c)
	if err != nil {
		return fields, err
	}
	for i := range fields {
		if o, ok := opts[fields[i].Name]; ok {
			fields[i].Options = o
		}
	}
	return fields, nil
}

// render re-fetches the list so the page always shows what the API holds,
// including right after a failed create or delete.
func (h *ResourceHandler[T]) render(w http.ResponseWriter, r *http.Request, status int, form url.Values, formErr error, alert string) {
	ctx := r.Context()
	lang := middleware.LangFrom(r)
	c := h.env.client(r)

	headers := make([]string, len(h.res.Columns))
	for i, col := range h.res.Columns {
		headers[i] = col.Header
	}
	data := map[string]any{
		"Title":    view.Title(i18n.T(lang, h.res.Name+".title")),
		"Resource": h.res.Name,
		"Headers":  headers,
		"Form":     form,
		"Errors":   fieldErrors(lang, formErr),
		"Alert":    alert,
	}

	items, err := h.list(ctx, c)
	if err != nil {
		logger(r).Error("list failed", "resource", h.res.Name, "error", err)
		if alert == "" {
			data["Alert"] = describe(lang, "error.load", h.noun(lang), err)
			status = statusFor(err)
		}
	}
	data["Rows"] = h.rows(items)

	fields, err := h.fields(ctx, c)
	if err != nil {
		logger(r).Warn("form options unavailable", "resource", h.res.Name, "error", err)
	}
	data["Fields"] = fields

	if err := view.RenderStatus(w, r, status, h.res.Template, data); err != nil {
		logger(r).Error("render failed", "template", h.res.Template, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
