package models

// Option is a value/label pair rendered as a select option or radio.
type Option struct {
	Value string
	Label string
}

type PaymentType string

const (
	PaymentPix        PaymentType = "pix"
	PaymentCreditCard PaymentType = "credit_card"
	PaymentDebitCard  PaymentType = "debit_card"
	PaymentCash       PaymentType = "cash"
)

// PaymentTypes lists the accepted payment types in display order.
var PaymentTypes = []Option{
	{Value: string(PaymentPix), Label: "Pix"},
	{Value: string(PaymentCreditCard), Label: "Cartão de Crédito"},
	{Value: string(PaymentDebitCard), Label: "Cartão de Débito"},
	{Value: string(PaymentCash), Label: "Dinheiro"},
}

// Categories lists the product categories in display order.
var Categories = []Option{
	{Value: "pratos", Label: "Pratos"},
	{Value: "bebida", Label: "Bebida"},
	{Value: "pratos_do_dia", Label: "Pratos do dia"},
	{Value: "lanches", Label: "Lanches"},
}

// Values returns the option values.
func Values(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Value
	}
	return out
}

// Label returns the label for value, or value itself when unknown.
func Label(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
