package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestOrder_Accessors(t *testing.T) {
	tests := []struct {
		name   string
		order  Order
		table  string
		waiter string
		open   bool
	}{
		{"full", Order{Status: "open", Table: &OrderTable{TableNumber: "7"}, Waiter: &OrderWaiter{Name: "Ana"}}, "7", "Ana", true},
		{"no relations", Order{Status: "closed"}, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.TableNumber(); got != tt.table {
				t.Errorf("TableNumber() = %q, want %q", got, tt.table)
			}
			if got := tt.order.WaiterName(); got != tt.waiter {
				t.Errorf("WaiterName() = %q, want %q", got, tt.waiter)
			}
			if got := tt.order.IsOpen(); got != tt.open {
				t.Errorf("IsOpen() = %v, want %v", got, tt.open)
			}
		})
	}
}

func TestOrderItem_Subtotal(t *testing.T) {
	item := OrderItem{Quantity: 3, Product: ItemProduct{Price: decimal.RequireFromString("12.50")}}
	if got := item.Subtotal(); !got.Equal(decimal.RequireFromString("37.5")) {
		t.Errorf("Subtotal() = %s", got)
	}
}

func TestPaymentSummary_DecodesStringAndNullTotals(t *testing.T) {
	var s PaymentSummary
	if err := json.Unmarshal([]byte(`{"orderId":"o1","total":"42.5","items":[]}`), &s); err != nil {
		t.Fatal(err)
	}
	if !s.Total.Equal(decimal.RequireFromString("42.5")) {
		t.Errorf("total = %s", s.Total)
	}
	var n PaymentSummary
	if err := json.Unmarshal([]byte(`{"orderId":"o1","total":null,"items":[]}`), &n); err != nil {
		t.Fatal(err)
	}
	if !n.Total.IsZero() {
		t.Errorf("null total = %s", n.Total)
	}
}

func TestLabel(t *testing.T) {
	if Label(PaymentTypes, "credit_card") != "Cartão de Crédito" {
		t.Error("credit_card label")
	}
	if Label(Categories, "sobremesa") != "sobremesa" {
		t.Error("unknown value should pass through")
	}
	if len(Values(PaymentTypes)) != 4 {
		t.Error("expected 4 payment types")
	}
}
