package handlers

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diewo77/smart-order/internal/api"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/validation"
)

// postForm builds a Resource.Create that validates with parse and POSTs
// the payload to path.
func postForm(path string, parse func(url.Values) (any, *validation.Error)) func(context.Context, *api.Client, url.Values) error {
	return func(ctx context.Context, c *api.Client, form url.Values) error {
		payload, verr := parse(form)
		if verr != nil {
			return verr
		}
		_, err := api.Create(ctx, c, path, payload)
		return err
	}
}

func field(form url.Values, name string) string {
	return strings.TrimSpace(form.Get(name))
}

type tablePayload struct {
	TableNumber string `json:"tableNumber"`
}

func parseTable(form url.Values) (any, *validation.Error) {
	v := validation.Violations{}
	p := tablePayload{TableNumber: field(form, "tableNumber")}
	validation.MinLength("tableNumber", p.TableNumber, 1, v)
	return p, validation.NewError(v, "tableNumber")
}

type waiterPayload struct {
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
}

func parseWaiter(form url.Values) (any, *validation.Error) {
	v := validation.Violations{}
	p := waiterPayload{Name: field(form, "name")}
	validation.MinLength("name", p.Name, 3, v)
	p.Telephone = validation.Digits("telephone", form.Get("telephone"), 11, v)
	return p, validation.NewError(v, "name", "telephone")
}

type productPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Price is sent as a JSON number.
	Price    json.Number `json:"price"`
	Category string      `json:"category"`
}

// parsePrice accepts "12,50" as well as "12.50".
func parsePrice(raw string, v validation.Violations) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		v.Add("price", "required")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		v.Add("price", "invalid_number")
		return decimal.Zero
	}
	if !d.IsPositive() {
		v.Add("price", "must_be_positive")
	}
	return d
}

func parseProduct(form url.Values) (any, *validation.Error) {
	v := validation.Violations{}
	p := productPayload{
		Name:        field(form, "name"),
		Description: field(form, "description"),
		Category:    field(form, "category"),
	}
	validation.Required("name", p.Name, v)
	validation.Required("description", p.Description, v)
	p.Price = json.Number(parsePrice(form.Get("price"), v).String())
	validation.OneOf("category", p.Category, models.Values(models.Categories), v)
	return p, validation.NewError(v, "name", "description", "price", "category")
}

type customerPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	Telephone string `json:"telephone"`
}

func parseCustomer(form url.Values) (any, *validation.Error) {
	v := validation.Violations{}
	p := customerPayload{Name: field(form, "name"), Email: field(form, "email")}
	validation.Required("name", p.Name, v)
	validation.Email("email", p.Email, v)
	p.CPF = validation.Digits("cpf", form.Get("cpf"), 11, v)
	p.Telephone = validation.Digits("telephone", form.Get("telephone"), 11, v)
	return p, validation.NewError(v, "name", "email", "cpf", "telephone")
}

func parseSignIn(form url.Values) (models.Credentials, *validation.Error) {
	v := validation.Violations{}
	c := models.Credentials{Email: field(form, "email"), Password: form.Get("password")}
	validation.Email("email", c.Email, v)
	validation.Required("password", c.Password, v)
	return c, validation.NewError(v, "email", "password")
}

func parseSignUp(form url.Values) (models.SignUp, *validation.Error) {
	v := validation.Violations{}
	s := models.SignUp{
		Name:     field(form, "name"),
		Email:    field(form, "email"),
		Password: form.Get("password"),
	}
	validation.Required("name", s.Name, v)
	validation.Email("email", s.Email, v)
	validation.MinLength("password", s.Password, 6, v)
	validation.Equal("passwordConfirm", form.Get("passwordConfirm"), s.Password, v)
	return s, validation.NewError(v, "name", "email", "password", "passwordConfirm")
}
