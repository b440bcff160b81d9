package validation

import (
	"errors"
	"testing"
)

func TestValidators(t *testing.T) {
	v := Violations{}
	Required("tableNumber", "  ", v)
	MinLength("name", "Jo", 3, v)
	Email("email", "not-an-email", v)
	cpf := Digits("cpf", "123.456.789-0", 11, v)
	OneOf("category", "sobremesa", []string{"pratos", "bebida"}, v)
	Equal("passwordConfirm", "abc", "abd", v)
	qty := PositiveInt("quantity", "0", v)

	want := map[string]string{
		"tableNumber":     "required",
		"name":            "too_short",
		"email":           "invalid_email",
		"cpf":             "invalid_digits",
		"category":        "not_allowed",
		"passwordConfirm": "mismatch",
		"quantity":        "must_be_positive",
	}
	for f, c := range want {
		if v[f] != c {
			t.Errorf("%s: got %q want %q", f, v[f], c)
		}
	}
	if cpf != "1234567890" {
		t.Errorf("cpf normalized to %q", cpf)
	}
	if qty != 0 {
		t.Errorf("qty = %d", qty)
	}
}

func TestValidators_Accept(t *testing.T) {
	v := Violations{}
	Required("tableNumber", "7", v)
	MinLength("name", "Ana", 3, v)
	Email("email", "ana@example.com", v)
	if got := Digits("telephone", "(11) 99999-8888", 11, v); got != "11999998888" {
		t.Errorf("telephone normalized to %q", got)
	}
	if got := PositiveInt("quantity", " 3 ", v); got != 3 {
		t.Errorf("quantity = %d", got)
	}
	if !v.Empty() {
		t.Fatalf("unexpected violations %v", v)
	}
}

func TestAdd_KeepsFirstCode(t *testing.T) {
	v := Violations{}
	Required("password", "", v)
	MinLength("password", "", 6, v)
	if v["password"] != "required" {
		t.Fatalf("got %q", v["password"])
	}
}

func TestError_First(t *testing.T) {
	if NewError(Violations{}) != nil {
		t.Fatal("expected nil error for no violations")
	}
	e := NewError(Violations{"waiterName": "required", "cpf": "invalid_digits"}, "tableNumber", "cpf", "waiterName")
	f, c := e.First()
	if f != "cpf" || c != "invalid_digits" {
		t.Fatalf("First = %s %s", f, c)
	}
	var target *Error
	if !errors.As(error(e), &target) {
		t.Fatal("errors.As failed")
	}
}
