package services

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/diewo77/smart-order/internal/api"
	"github.com/diewo77/smart-order/internal/events"
	"github.com/diewo77/smart-order/internal/models"
)

// OrderWorkflow drives order → items → payment against the REST API.
// Every mutation is followed by a re-fetch; nothing is derived locally.
type OrderWorkflow struct {
	client *api.Client
	events events.Publisher
	log    *slog.Logger
}

// NewOrderWorkflow binds the workflow to a client that already carries the
// caller's credentials.
func NewOrderWorkflow(client *api.Client, pub events.Publisher, log *slog.Logger) *OrderWorkflow {
	if pub == nil {
		pub = events.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &OrderWorkflow{client: client, events: pub, log: log}
}

// Orders lists all orders. A 400 is the API's way of saying "none yet".
func (w *OrderWorkflow) Orders(ctx context.Context) ([]models.Order, error) {
	return api.ListOrEmpty[models.Order](ctx, w.client, api.PathOrders)
}

// Tables and Waiters feed the new-order form.
func (w *OrderWorkflow) Tables(ctx context.Context) ([]models.Table, error) {
	return api.ListOrEmpty[models.Table](ctx, w.client, api.PathTables)
}

func (w *OrderWorkflow) Waiters(ctx context.Context) ([]models.Waiter, error) {
	return api.ListOrEmpty[models.Waiter](ctx, w.client, api.PathWaiters)
}

func (w *OrderWorkflow) Products(ctx context.Context) ([]models.Product, error) {
	return api.List[models.Product](ctx, w.client, api.PathProducts)
}

// CreateOrder validates in locally, posts it and returns the re-fetched
// order list. On a validation error no request is sent.
func (w *OrderWorkflow) CreateOrder(ctx context.Context, in OrderInput) ([]models.Order, error) {
	norm, verr := in.Validate()
	if verr != nil {
		return nil, verr
	}
	id, err := api.Create(ctx, w.client, api.PathOrders, orderPayload(norm))
	if err != nil {
		w.log.Error("create order failed", "table", norm.TableNumber, "error", err)
		return nil, err
	}
	w.publish(ctx, events.OrderCreated, map[string]any{
		"orderId":     id,
		"tableNumber": norm.TableNumber,
		"waiterName":  norm.WaiterName,
	})
	return w.Orders(ctx)
}

// DeleteOrder removes an order.
func (w *OrderWorkflow) DeleteOrder(ctx context.Context, orderID string) error {
	if err := api.Delete(ctx, w.client, api.PathOrders, orderID); err != nil {
		w.log.Error("delete order failed", "order", orderID, "error", err)
		return err
	}
	w.publish(ctx, events.OrderDeleted, map[string]any{"orderId": orderID})
	return nil
}

// Items returns the items of orderID.
func (w *OrderWorkflow) Items(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	all, err := api.List[models.OrderItem](ctx, w.client, api.PathOrderItems)
	if err != nil {
		return nil, err
	}
	items := make([]models.OrderItem, 0, len(all))
	for _, it := range all {
		if it.OrderID == orderID {
			items = append(items, it)
		}
	}
	return items, nil
}

// AddItem validates and posts a new item. onAdded runs only after the API
// accepted it; the caller owns refreshing its list.
func (w *OrderWorkflow) AddItem(ctx context.Context, orderID string, in ItemInput, onAdded func()) error {
	productID, qty, verr := in.parse()
	if verr != nil {
		return verr
	}
	payload := itemPayload{ProductID: productID, Quantity: qty, OrderID: orderID}
	if _, err := api.Create(ctx, w.client, api.PathOrderItems, payload); err != nil {
		w.log.Error("add item failed", "order", orderID, "product", productID, "error", err)
		return err
	}
	w.publish(ctx, events.OrderItemAdded, map[string]any{
		"orderId":   orderID,
		"productId": productID,
		"quantity":  qty,
	})
	if onAdded != nil {
		onAdded()
	}
	return nil
}

// RemoveItem deletes an item and returns the order's re-fetched items.
func (w *OrderWorkflow) RemoveItem(ctx context.Context, orderID, itemID string) ([]models.OrderItem, error) {
	if err := api.Delete(ctx, w.client, api.PathOrderItems, itemID); err != nil {
		w.log.Error("remove item failed", "order", orderID, "item", itemID, "error", err)
		return nil, err
	}
	w.publish(ctx, events.OrderItemRemoved, map[string]any{"orderId": orderID, "itemId": itemID})
	return w.Items(ctx, orderID)
}

// Summary returns the server-computed payment summary of orderID.
func (w *OrderWorkflow) Summary(ctx context.Context, orderID string) (models.PaymentSummary, error) {
	return api.Get[models.PaymentSummary](ctx, w.client, api.PathPayments+"/"+url.PathEscape(orderID))
}

// Pay submits one payment for orderID and returns the re-fetched summary.
func (w *OrderWorkflow) Pay(ctx context.Context, orderID, paymentType string) (models.PaymentSummary, error) {
	if verr := validatePaymentType(paymentType); verr != nil {
		return models.PaymentSummary{}, verr
	}
	payload := paymentPayload{PaymentType: paymentType, OrderID: orderID}
	if _, err := api.Create(ctx, w.client, api.PathPayments, payload); err != nil {
		w.log.Error("payment failed", "order", orderID, "type", paymentType, "error", err)
		return models.PaymentSummary{}, err
	}
	w.publish(ctx, events.PaymentSubmitted, map[string]any{"orderId": orderID, "paymentType": paymentType})
	return w.Summary(ctx, orderID)
}

func (w *OrderWorkflow) publish(ctx context.Context, eventType string, payload map[string]any) {
	if err := w.events.Publish(ctx, events.New(eventType, payload)); err != nil {
		w.log.Warn("event publish failed", "type", eventType, "error", err)
	}
}
