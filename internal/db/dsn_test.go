package db

import (
	"strings"
	"testing"
)

func TestNormalizeDSN(t *testing.T) {
	cases := map[string]string{
		"":                                       "",
		`"postgres://u:p@h:5432/d"`:              "postgres://u:p@h:5432/d",
		"host=h  user=u dbname=d":                "host=h user=u dbname=d sslmode=disable",
		"host=h user=u dbname=d sslmode=require": "host=h user=u dbname=d sslmode=require",
		"garbage":                                "garbage",
	}
	for in, want := range cases {
		if got := NormalizeDSN(in); got != want {
			t.Errorf("NormalizeDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToURLDSN(t *testing.T) {
	got := ToURLDSN("host=db port=5432 user=so password=secret dbname=smart sslmode=disable")
	want := "postgres://so:secret@db:5432/smart?sslmode=disable"
	if got != want {
		t.Fatalf("ToURLDSN = %q, want %q", got, want)
	}
	if ToURLDSN("host=db") != "host=db" {
		t.Fatal("incomplete DSN should pass through")
	}
}

func TestMaskDSN(t *testing.T) {
	if got := MaskDSN("host=db password=secret dbname=x"); got != "host=db password=*** dbname=x" {
		t.Errorf("kv mask = %q", got)
	}
	if got := MaskDSN("postgres://so:secret@db/x"); strings.Contains(got, "secret") || !strings.HasPrefix(got, "postgres://so:") {
		t.Errorf("url mask = %q", got)
	}
}
