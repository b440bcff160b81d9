package handlers

import (
	"net/http"
	"net/url"

	"github.com/diewo77/smart-order/gate"
	"github.com/diewo77/smart-order/i18n"
	"github.com/diewo77/smart-order/internal/middleware"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/internal/services"
	"github.com/diewo77/smart-order/view"
)

// OrderHandler serves the page of a single order and its items.
type OrderHandler struct {
	env *Env
}

func NewOrderHandler(env *Env) *OrderHandler {
	return &OrderHandler{env: env}
}

func (h *OrderHandler) Register(mux *http.ServeMux, guard Guard) {
	mux.Handle("GET /orders/{id}", guard("orders", gate.ActionView)(http.HandlerFunc(h.Show)))
	mux.Handle("POST /orders/{id}/items", guard("items", gate.ActionCreate)(http.HandlerFunc(h.AddItem)))
	mux.Handle("POST /orders/{id}/items/{itemId}/delete", guard("items", gate.ActionDelete)(http.HandlerFunc(h.RemoveItem)))
}

type orderPage struct {
	status int
	items  []models.OrderItem // already fetched; nil means fetch
	form   url.Values
	err    error
	alert  string
	ack    string
}

func (h *OrderHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, orderPage{status: http.StatusOK})
}

// AddItem validates and posts the item, then redirects back to the order
// page, which re-fetches the items.
func (h *OrderHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	orderID := r.PathValue("id")
	in := services.ItemInput{ProductID: r.PostForm.Get("productId"), Quantity: r.PostForm.Get("quantity")}
	err := h.env.workflow(r).AddItem(r.Context(), orderID, in, func() {
		middleware.Flash(w, r, "items.created")
	})
	if err != nil {
		lang := middleware.LangFrom(r)
		h.render(w, r, orderPage{
			status: statusFor(err),
			form:   r.PostForm,
			err:    err,
			alert:  describe(lang, "error.add_item", "", err),
		})
		return
	}
	http.Redirect(w, r, "/orders/"+url.PathEscape(orderID), http.StatusSeeOther)
}

// RemoveItem asks for confirmation, deletes the item and shows the
// re-fetched items with an acknowledgment.
func (h *OrderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	orderID, itemID := r.PathValue("id"), r.PathValue("itemId")
	lang := middleware.LangFrom(r)
	back := "/orders/" + url.PathEscape(orderID)
	if r.FormValue("confirm") != "yes" {
		Confirm(w, r, i18n.T(lang, "items.confirm_delete"), r.URL.Path, back, nil)
		return
	}
	items, err := h.env.workflow(r).RemoveItem(r.Context(), orderID, itemID)
	if err != nil {
		h.render(w, r, orderPage{status: statusFor(err), alert: describe(lang, "error.delete", i18n.T(lang, "items.noun"), err)})
		return
	}
	h.render(w, r, orderPage{status: http.StatusOK, items: items, ack: i18n.T(lang, "items.deleted")})
}

func (h *OrderHandler) render(w http.ResponseWriter, r *http.Request, p orderPage) {
	ctx := r.Context()
	lang := middleware.LangFrom(r)
	orderID := r.PathValue("id")
	wf := h.env.workflow(r)

	orders, err := wf.Orders(ctx)
	if err != nil {
		logger(r).Error("load orders failed", "error", err)
		h.fail(w, r, statusFor(err), describe(lang, "error.load", i18n.T(lang, "orders.noun"), err))
		return
	}
	var order *models.Order
	for i := range orders {
		if orders[i].ID == orderID {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		NotFound(w, r)
		return
	}

	alert := p.alert
	items := p.items
	if items == nil {
		if items, err = wf.Items(ctx, orderID); err != nil {
			logger(r).Error("load items failed", "order", orderID, "error", err)
			if alert == "" {
				alert = describe(lang, "error.load", i18n.T(lang, "items.noun"), err)
			}
		}
	}
	products, err := wf.Products(ctx)
	if err != nil {
		logger(r).Warn("load products failed", "error", err)
	}
	options := make([]models.Option, 0, len(products))
	for _, pr := range products {
		options = append(options, models.Option{Value: pr.ID, Label: pr.Name})
	}

	data := map[string]any{
		"Title":    view.Title(i18n.T(lang, "orders.items")),
		"Order":    order,
		"Items":    items,
		"Products": options,
		"Form":     p.form,
		"Errors":   fieldErrors(lang, p.err),
		"Alert":    alert,
		"Ack":      p.ack,
		"AckNext":  "/orders/" + url.PathEscape(orderID),
	}
	if err := view.RenderStatus(w, r, p.status, "order.html", data); err != nil {
		logger(r).Error("render failed", "template", "order.html", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *OrderHandler) fail(w http.ResponseWriter, r *http.Request, status int, alert string) {
	lang := middleware.LangFrom(r)
	data := map[string]any{
		"Title": view.Title(i18n.T(lang, "orders.title")),
		"Alert": alert,
		"Back":  "/orders",
	}
	if err := view.RenderStatus(w, r, status, "error.html", data); err != nil {
		http.Error(w, alert, status)
	}
}
