package handlers

import (
	"net/http"
	"strconv"

	"github.com/diewo77/smart-order/i18n"
	"github.com/diewo77/smart-order/internal/middleware"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/view"
)

func render(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	if err := view.RenderStatus(w, r, status, page, data); err != nil {
		logger(r).Error("render failed", "template", page, "error", err)
		http.Error(w, http.StatusText(status), status)
	}
}

// dashboardLinks are the management screens in menu order.
var dashboardLinks = []models.Option{
	{Value: "/orders", Label: "orders.title"},
	{Value: "/tables", Label: "tables.title"},
	{Value: "/waiters", Label: "waiters.title"},
	{Value: "/products", Label: "products.title"},
	{Value: "/customers", Label: "customers.title"},
	{Value: "/payments", Label: "payments.title"},
	{Value: "/users", Label: "users.title"},
	{Value: "/satisfaction", Label: "nav.satisfaction"},
}

func Dashboard(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFrom(r)
	render(w, r, http.StatusOK, "dashboard.html", map[string]any{
		"Title": view.Title(i18n.T(lang, "dashboard.title")),
		"Links": dashboardLinks,
	})
}

// Satisfaction shows the rating scale. Answers are not collected.
func Satisfaction(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFrom(r)
	ratings := make([]models.Option, 0, 5)
	for i := 1; i <= 5; i++ {
		n := strconv.Itoa(i)
		ratings = append(ratings, models.Option{Value: n, Label: i18n.T(lang, "satisfaction."+n)})
	}
	render(w, r, http.StatusOK, "satisfaction.html", map[string]any{
		"Title":   view.Title(i18n.T(lang, "satisfaction.title")),
		"Ratings": ratings,
	})
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFrom(r)
	render(w, r, http.StatusNotFound, "notfound.html", map[string]any{
		"Title": view.Title(i18n.T(lang, "common.not_found")),
	})
}

// Loading is shown while a client's session is still being restored. The
// page refreshes itself.
func Loading(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	render(w, r, http.StatusServiceUnavailable, "loading.html", map[string]any{
		"Title": view.Title(""),
		"Next":  r.URL.RequestURI(),
	})
}

// Confirm asks before a destructive action. Accepting re-posts to action
// with confirm=yes plus the hidden fields.
func Confirm(w http.ResponseWriter, r *http.Request, message, action, cancel string, hidden map[string]string) {
	render(w, r, http.StatusOK, "confirm.html", map[string]any{
		"Title":   view.Title(i18n.T(middleware.LangFrom(r), "common.confirm")),
		"Message": message,
		"Action":  action,
		"Cancel":  cancel,
		"Hidden":  hidden,
	})
}

// Ack reports a completed action; its OK button navigates to next.
func Ack(w http.ResponseWriter, r *http.Request, message, next string) {
	render(w, r, http.StatusOK, "ack.html", map[string]any{
		"Title":   view.Title(i18n.T(middleware.LangFrom(r), "common.ok")),
		"Message": message,
		"Next":    next,
	})
}
