package services

import (
	"strings"

	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/validation"
)

// OrderInput is the new-order form.
type OrderInput struct {
	TableNumber string
	CPF         string
	WaiterName  string
}

var orderFields = []string{"tableNumber", "cpf", "waiterName"}

// Validate normalizes the input (cpf reduced to digits) and checks it.
func (in OrderInput) Validate() (OrderInput, *validation.Error) {
	v := validation.Violations{}
	out := OrderInput{
		TableNumber: strings.TrimSpace(in.TableNumber),
		WaiterName:  strings.TrimSpace(in.WaiterName),
	}
	validation.MinLength("tableNumber", out.TableNumber, 1, v)
	out.CPF = validation.Digits("cpf", in.CPF, 11, v)
	validation.Required("waiterName", out.WaiterName, v)
	return out, validation.NewError(v, orderFields...)
}

type orderPayload struct {
	TableNumber string `json:"tableNumber"`
	CPF         string `json:"cpf"`
	WaiterName  string `json:"waiterName"`
}

// ItemInput is the add-item form; Quantity is the raw text field.
type ItemInput struct {
	ProductID string
	Quantity  string
}

var itemFields = []string{"productId", "quantity"}

func (in ItemInput) parse() (string, int, *validation.Error) {
	v := validation.Violations{}
	productID := strings.TrimSpace(in.ProductID)
	validation.Required("productId", productID, v)
	qty := validation.PositiveInt("quantity", in.Quantity, v)
	return productID, qty, validation.NewError(v, itemFields...)
}

type itemPayload struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	OrderID   string `json:"orderId"`
}

type paymentPayload struct {
	PaymentType string `json:"paymentType"`
	OrderID     string `json:"orderId"`
}

func validatePaymentType(pt string) *validation.Error {
	v := validation.Violations{}
	validation.OneOf("paymentType", pt, models.Values(models.PaymentTypes), v)
	return validation.NewError(v, "paymentType")
}
