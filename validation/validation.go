package validation

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Violations maps a form field to the code of the first rule it broke.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records code for field unless an earlier rule already failed.
func (v Violations) Add(field, code string) {
	if _, exists := v[field]; !exists {
		v[field] = code
	}
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "required")
	}
}

func MinLength(field, value string, n int, v Violations) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
		v.Add(field, "too_short")
	}
}

func Email(field, value string, v Violations) {
	addr, err := mail.ParseAddress(strings.TrimSpace(value))
	if err != nil || addr.Name != "" || !strings.Contains(addr.Address, ".") {
		v.Add(field, "invalid_email")
	}
}

// Digits strips every non-digit and checks the remainder has exactly n
// digits. It returns the normalized value either way.
func Digits(field, value string, n int, v Violations) string {
	d := OnlyDigits(value)
	if len(d) != n {
		v.Add(field, "invalid_digits")
	}
	return d
}

func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, "not_allowed")
}

func Equal(field, value, other string, v Violations) {
	if value != other {
		v.Add(field, "mismatch")
	}
}

// PositiveInt parses value as a whole number greater than zero.
func PositiveInt(field, value string, v Violations) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		v.Add(field, "must_be_positive")
		return 0
	}
	return n
}

// OnlyDigits drops every rune that is not 0-9.
func OnlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
