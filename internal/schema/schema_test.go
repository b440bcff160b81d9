package schema

import (
	"testing"

	"github.com/diewo77/smart-order/internal/models"
)

func TestDecode_Session(t *testing.T) {
	s, err := Decode[models.Session]([]byte(`{"token":"t1","user":{"id":"u1","name":"Ana","email":"ana@example.com","role":"admin"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Token != "t1" || s.User.Role != models.RoleAdmin {
		t.Fatalf("unexpected session %+v", s)
	}
}

func TestDecode_RejectsMissingFields(t *testing.T) {
	cases := []string{
		`{"token":"","user":{"id":"u1","name":"Ana","email":"ana@example.com","role":"admin"}}`,
		`{"token":"t1","user":{"id":"u1","name":"Ana","email":"nope","role":"admin"}}`,
		`{"token":"t1"}`,
		`not json`,
	}
	for _, c := range cases {
		if _, err := Decode[models.Session]([]byte(c)); err == nil {
			t.Errorf("expected error for %s", c)
		}
	}
}

func TestDecodeList(t *testing.T) {
	tables, err := DecodeList[models.Table]([]byte(`[{"id":"1","tableNumber":"5","status":"free"}]`))
	if err != nil || len(tables) != 1 {
		t.Fatalf("tables = %v, err = %v", tables, err)
	}
	if _, err := DecodeList[models.Table]([]byte(`[{"id":"1"}]`)); err == nil {
		t.Fatal("expected validation error for missing tableNumber")
	}
	empty, err := DecodeList[models.Table]([]byte(`null`))
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("null list = %v, err = %v", empty, err)
	}
}

func TestDecodeList_ItemQuantity(t *testing.T) {
	if _, err := DecodeList[models.OrderItem]([]byte(`[{"id":"i1","orderId":"o1","quantity":0,"product":{"id":"p","name":"X","price":1}}]`)); err == nil {
		t.Fatal("expected quantity 0 to be rejected")
	}
}
