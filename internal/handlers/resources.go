package handlers

import (
	"context"
	"net/url"

	"github.com/diewo77/smart-order/internal/api"
	"github.com/diewo77/smart-order/internal/format"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/internal/services"
)

func Tables() Resource[models.Table] {
	return Resource[models.Table]{
		Name:    "tables",
		APIPath: api.PathTables,
		ID:      func(t models.Table) string { return t.ID },
		Columns: []Column[models.Table]{
			{Header: "field.tableNumber", Value: func(t models.Table) string { return t.TableNumber }},
			{Header: "field.status", Value: func(t models.Table) string { return t.Status }},
		},
		Fields: []Field{
			{Name: "tableNumber", Label: "field.tableNumber", Type: "text"},
		},
		Create:            postForm(api.PathTables, parseTable),
		EmptyOnBadRequest: true,
		Ack:               true,
	}
}

func Waiters() Resource[models.Waiter] {
	return Resource[models.Waiter]{
		Name:    "waiters",
		APIPath: api.PathWaiters,
		ID:      func(w models.Waiter) string { return w.ID },
		Columns: []Column[models.Waiter]{
			{Header: "field.name", Value: func(w models.Waiter) string { return w.Name }},
			{Header: "field.telephone", Value: func(w models.Waiter) string { return format.Phone(w.Telephone) }},
			{Header: "field.hiringDate", Value: func(w models.Waiter) string { return format.DatePtr(w.HiringDate) }},
		},
		Fields: []Field{
			{Name: "name", Label: "field.name", Type: "text"},
			{Name: "telephone", Label: "field.telephone", Type: "tel"},
		},
		Create:            postForm(api.PathWaiters, parseWaiter),
		EmptyOnBadRequest: true,
		Ack:               true,
	}
}

func Products() Resource[models.Product] {
	return Resource[models.Product]{
		Name:    "products",
		APIPath: api.PathProducts,
		ID:      func(p models.Product) string { return p.ID },
		Columns: []Column[models.Product]{
			{Header: "field.name", Value: func(p models.Product) string { return p.Name }},
			{Header: "field.description", Value: func(p models.Product) string { return p.Description }},
			{Header: "field.price", Value: func(p models.Product) string { return format.Currency(p.Price) }},
			{Header: "field.category", Value: func(p models.Product) string { return format.Category(p.Category) }},
		},
		Fields: []Field{
			{Name: "name", Label: "field.name", Type: "text"},
			{Name: "description", Label: "field.description", Type: "text"},
			{Name: "price", Label: "field.price", Type: "text"},
			{Name: "category", Label: "field.category", Type: "select", Options: models.Categories},
		},
		Create: postForm(api.PathProducts, parseProduct),
		Ack:    true,
	}
}

func Customers() Resource[models.Customer] {
	return Resource[models.Customer]{
		Name:    "customers",
		APIPath: api.PathCustomers,
		ID:      func(c models.Customer) string { return c.ID },
		Columns: []Column[models.Customer]{
			{Header: "field.name", Value: func(c models.Customer) string { return c.Name }},
			{Header: "field.email", Value: func(c models.Customer) string { return c.Email }},
			{Header: "field.cpf", Value: func(c models.Customer) string { return c.CPF }},
			{Header: "field.telephone", Value: func(c models.Customer) string { return format.Phone(c.Telephone) }},
			{Header: "field.createdAt", Value: func(c models.Customer) string { return format.DatePtr(c.CreatedAt) }},
		},
		Fields: []Field{
			{Name: "name", Label: "field.name", Type: "text"},
			{Name: "email", Label: "field.email", Type: "email"},
			{Name: "cpf", Label: "field.cpf", Type: "text"},
			{Name: "telephone", Label: "field.telephone", Type: "tel"},
		},
		Create: postForm(api.PathCustomers, parseCustomer),
	}
}

// Orders goes through the order workflow so creates and deletes publish
// their events.
func Orders(env *Env) Resource[models.Order] {
	return Resource[models.Order]{
		Name:    "orders",
		APIPath: api.PathOrders,
		ID:      func(o models.Order) string { return o.ID },
		Columns: []Column[models.Order]{
			{
				Header: "field.tableNumber",
				Value:  func(o models.Order) string { return o.TableNumber() },
				Link:   func(o models.Order) string { return "/orders/" + url.PathEscape(o.ID) },
			},
			{Header: "field.waiter", Value: func(o models.Order) string { return o.WaiterName() }},
			{Header: "field.customer", Value: func(o models.Order) string {
				if o.Customer == nil {
					return ""
				}
				return o.Customer.Name
			}},
			{Header: "field.status", Value: func(o models.Order) string { return o.Status }},
			{Header: "field.createdAt", Value: func(o models.Order) string { return format.DatePtr(o.CreatedAt) }},
		},
		Fields: []Field{
			{Name: "tableNumber", Label: "field.tableNumber", Type: "select"},
			{Name: "cpf", Label: "field.cpf", Type: "text"},
			{Name: "waiterName", Label: "field.waiter", Type: "select"},
		},
		Options: func(ctx context.Context, c *api.Client) (map[string][]models.Option, error) {
			wf := services.NewOrderWorkflow(c, env.Events, nil)
			tables, err := wf.Tables(ctx)
			if err != nil {
				return nil, err
			}
			waiters, err := wf.Waiters(ctx)
			if err != nil {
				return nil, err
			}
			opts := map[string][]models.Option{}
			for _, t := range tables {
				opts["tableNumber"] = append(opts["tableNumber"], models.Option{Value: t.TableNumber, Label: t.TableNumber})
			}
			for _, w := range waiters {
				opts["waiterName"] = append(opts["waiterName"], models.Option{Value: w.Name, Label: w.Name})
			}
			return opts, nil
		},
		Create: func(ctx context.Context, c *api.Client, form url.Values) error {
			in := services.OrderInput{
				TableNumber: form.Get("tableNumber"),
				CPF:         form.Get("cpf"),
				WaiterName:  form.Get("waiterName"),
			}
			_, err := services.NewOrderWorkflow(c, env.Events, nil).CreateOrder(ctx, in)
			return err
		},
		Remove: func(ctx context.Context, c *api.Client, id string) error {
			return services.NewOrderWorkflow(c, env.Events, nil).DeleteOrder(ctx, id)
		},
		EmptyOnBadRequest: true,
	}
}

func Users() Resource[models.User] {
	return Resource[models.User]{
		Name:    "users",
		APIPath: api.PathUsers,
		ID:      func(u models.User) string { return u.ID },
		Columns: []Column[models.User]{
			{Header: "field.name", Value: func(u models.User) string { return u.Name }},
			{Header: "field.email", Value: func(u models.User) string { return u.Email }},
			{Header: "field.role", Value: func(u models.User) string { return string(u.Role) }},
		},
	}
}

func Payments() Resource[models.Payment] {
	return Resource[models.Payment]{
		Name:    "payments",
		APIPath: api.PathPayments,
		ID:      func(p models.Payment) string { return p.ID },
		Columns: []Column[models.Payment]{
			{
				Header: "field.order",
				Value:  func(p models.Payment) string { return p.OrderID },
				Link:   func(p models.Payment) string { return "/payments/" + url.PathEscape(p.OrderID) },
			},
			{Header: "field.paymentType", Value: func(p models.Payment) string { return models.Label(models.PaymentTypes, p.PaymentType) }},
			{Header: "field.total", Value: func(p models.Payment) string { return format.Currency(p.Total) }},
			{Header: "field.status", Value: func(p models.Payment) string { return p.Status }},
			{Header: "field.paymentDate", Value: func(p models.Payment) string { return format.DatePtr(p.PaymentDate) }},
		},
	}
}
