// Package format renders values the way the pages display them
// (Brazilian currency, dd/mm/yyyy dates, phone masks).
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diewo77/smart-order/validation"
)

// Currency formats v as Brazilian reais: 1234.5 → "R$ 1.234,50".
func Currency(v decimal.Decimal) string {
	s := v.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date formats an ISO-8601 timestamp as dd/mm/yyyy in the timestamp's own
// offset. Empty or unparseable input yields "".
func Date(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return ""
}

// DatePtr is Date for nullable fields.
func DatePtr(s *string) string {
	if s == nil {
		return ""
	}
	return Date(*s)
}

// Phone masks 10 and 11 digit Brazilian numbers; anything else is
// returned unchanged.
func Phone(s string) string {
	d := validation.OnlyDigits(s)
	switch len(d) {
	case 11:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	case 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	}
	return s
}

// Category turns "pratos_do_dia" into "PRATOS DO DIA".
func Category(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "_", " "))
}
