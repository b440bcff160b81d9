package models

import "github.com/shopspring/decimal"

type Table struct {
	ID          string `json:"id" validate:"required"`
	TableNumber string `json:"tableNumber" validate:"required"`
	Status      string `json:"status"`
}

type Waiter struct {
	ID         string  `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Telephone  string  `json:"telephone"`
	HiringDate *string `json:"hiringDate"`
}

type Product struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

type Customer struct {
	ID        string  `json:"id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Email     string  `json:"email"`
	CPF       string  `json:"cpf"`
	Telephone string  `json:"telephone"`
	CreatedAt *string `json:"createdAt"`
}

type OrderTable struct {
	TableNumber string `json:"tableNumber"`
}

type OrderWaiter struct {
	Name string `json:"name"`
}

type OrderCustomer struct {
	Name string `json:"name"`
}

// Order status is driven by the REST API; "open" is the only value the
// pages treat specially.
type Order struct {
	ID        string         `json:"id" validate:"required"`
	Status    string         `json:"status" validate:"required"`
	CreatedAt *string        `json:"createdAt"`
	Table     *OrderTable    `json:"table"`
	Waiter    *OrderWaiter   `json:"waiter"`
	Customer  *OrderCustomer `json:"customer"`
}

const OrderStatusOpen = "open"

func (o Order) IsOpen() bool { return o.Status == OrderStatusOpen }

func (o Order) TableNumber() string {
	if o.Table == nil {
		return ""
	}
	return o.Table.TableNumber
}

func (o Order) WaiterName() string {
	if o.Waiter == nil {
		return ""
	}
	return o.Waiter.Name
}

type ItemProduct struct {
	ID    string          `json:"id"`
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

type OrderItem struct {
	ID       string      `json:"id" validate:"required"`
	OrderID  string      `json:"orderId" validate:"required"`
	Quantity int         `json:"quantity" validate:"min=1"`
	Product  ItemProduct `json:"product"`
}

// Subtotal is price × quantity, for display only.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Payment struct {
	ID          string          `json:"id" validate:"required"`
	OrderID     string          `json:"orderId" validate:"required"`
	PaymentType string          `json:"paymentType"`
	PaymentDate *string         `json:"paymentDate"`
	Status      string          `json:"status"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   *string         `json:"createdAt"`
}

type PaymentLine struct {
	ProductName string          `json:"productName" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// PaymentSummary is GET /payments/:orderId. Total is computed by the
// server and never recomputed here; a null total decodes as zero.
type PaymentSummary struct {
	OrderID string          `json:"orderId" validate:"required"`
	Total   decimal.Decimal `json:"total"`
	Items   []PaymentLine   `json:"items" validate:"dive"`
}
