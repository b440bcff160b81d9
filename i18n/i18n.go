// Package i18n holds the UI message catalogs. Portuguese is the default
// language; English is kept for operators.
package i18n

import (
	"context"
	"fmt"
	"strings"
)

const DefaultLang = "pt"

type ctxKey struct{}

var catalogs = map[string]map[string]string{
	"pt": pt,
	"en": en,
}

// T returns the message for code in lang, falling back to the default
// language and finally to the code itself.
func T(lang, code string) string {
	if m, ok := catalogs[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := catalogs[DefaultLang][code]; ok {
		return s
	}
	return code
}

// Tf formats the message for code with args.
func Tf(lang, code string, args ...any) string {
	return fmt.Sprintf(T(lang, code), args...)
}

// Violation translates a validation code for field. A field-specific
// message ("cpf.invalid_digits") wins over the generic one ("invalid_digits").
func Violation(lang, field, code string) string {
	key := field + "." + code
	if s := T(lang, key); s != key {
		return s
	}
	return T(lang, code)
}

// Supported reports whether lang has a catalog.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// DetectLanguage picks a supported language from an Accept-Language header.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		base, _, _ := strings.Cut(strings.ToLower(tag), "-")
		if Supported(base) {
			return base
		}
	}
	return DefaultLang
}

// WithLang stores the request language in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

// LangFrom returns the request language or DefaultLang.
func LangFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultLang
}
