package gate

// Action describes the kind of operation a principal wants to perform.
type Action string

const (
	ActionView   Action = "view"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
	// ActionPay submits a payment for an order.
	ActionPay Action = "pay"
)
