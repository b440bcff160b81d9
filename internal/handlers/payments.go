package handlers

import (
	"net/http"
	"net/url"

	"github.com/diewo77/smart-order/gate"
	"github.com/diewo77/smart-order/i18n"
	"github.com/diewo77/smart-order/internal/middleware"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/view"
)

// PaymentHandler serves the payment summary of an order and submits its
// payment.
type PaymentHandler struct {
	env *Env
}

func NewPaymentHandler(env *Env) *PaymentHandler {
	return &PaymentHandler{env: env}
}

func (h *PaymentHandler) Register(mux *http.ServeMux, guard Guard) {
	mux.Handle("GET /payments/{orderId}", guard("payments", gate.ActionView)(http.HandlerFunc(h.Summary)))
	mux.Handle("POST /payments/{orderId}", guard("payments", gate.ActionPay)(http.HandlerFunc(h.Pay)))
}

func (h *PaymentHandler) Summary(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderId")
	summary, err := h.env.workflow(r).Summary(r.Context(), orderID)
	if err != nil {
		lang := middleware.LangFrom(r)
		logger(r).Error("load payment summary failed", "order", orderID, "error", err)
		h.render(w, r, statusFor(err), nil, "", nil, describe(lang, "error.load", i18n.T(lang, "payments.noun"), err), "")
		return
	}
	h.render(w, r, http.StatusOK, &summary, "", nil, "", "")
}

// Pay confirms the chosen payment type, submits it once and shows the
// re-fetched summary with an acknowledgment.
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	orderID := r.PathValue("orderId")
	paymentType := r.PostForm.Get("paymentType")
	lang := middleware.LangFrom(r)

	if r.PostForm.Get("confirm") != "yes" {
		msg := i18n.T(lang, "payments.submit") + ": " + models.Label(models.PaymentTypes, paymentType) + "?"
		Confirm(w, r, msg, r.URL.Path, r.URL.Path, map[string]string{"paymentType": paymentType})
		return
	}
	summary, err := h.env.workflow(r).Pay(r.Context(), orderID, paymentType)
	if err != nil {
		current, serr := h.env.workflow(r).Summary(r.Context(), orderID)
		var sp *models.PaymentSummary
		if serr == nil {
			sp = &current
		}
		h.render(w, r, statusFor(err), sp, paymentType, err, describe(lang, "error.pay", "", err), "")
		return
	}
	h.render(w, r, http.StatusOK, &summary, "", nil, "", i18n.T(lang, "payments.paid"))
}

func (h *PaymentHandler) render(w http.ResponseWriter, r *http.Request, status int, summary *models.PaymentSummary, selected string, formErr error, alert, ack string) {
	lang := middleware.LangFrom(r)
	orderID := r.PathValue("orderId")
	data := map[string]any{
		"Title":        view.Title(i18n.T(lang, "payments.summary")),
		"OrderID":      orderID,
		"Summary":      summary,
		"PaymentTypes": models.PaymentTypes,
		"Selected":     selected,
		"Errors":       fieldErrors(lang, formErr),
		"Alert":        alert,
		"Ack":          ack,
		"AckNext":      "/payments/" + url.PathEscape(orderID),
	}
	if err := view.RenderStatus(w, r, status, "payment.html", data); err != nil {
		logger(r).Error("render failed", "template", "payment.html", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
