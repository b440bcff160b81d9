package api

// REST API collections.
const (
	PathSessions   = "/sessions"
	PathUsers      = "/users"
	PathCustomers  = "/customers"
	PathTables     = "/tables"
	PathWaiters    = "/waiters"
	PathProducts   = "/products"
	PathOrders     = "/orders"
	PathOrderItems = "/ordersItens"
	PathPayments   = "/payments"
)
