package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/diewo77/smart-order/i18n"
)

type ctxKey string

const (
	ctxFlash ctxKey = "pref_flash"

	langCookie  = "lang"
	flashCookie = "flash"
)

// Prefs resolves the UI language (query > cookie > Accept-Language) and
// consumes the one-shot flash message.
func Prefs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := ""
		if c, err := r.Cookie(langCookie); err == nil {
			lang = c.Value
		}
		if ql := r.URL.Query().Get("lang"); ql != "" && i18n.Supported(ql) {
			lang = ql
			http.SetCookie(w, &http.Cookie{Name: langCookie, Value: lang, Path: "/", MaxAge: 86400 * 30})
		}
		if !i18n.Supported(lang) {
			lang = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		}
		ctx := i18n.WithLang(r.Context(), lang)

		if c, err := r.Cookie(flashCookie); err == nil && c.Value != "" {
			if msg, err := url.QueryUnescape(c.Value); err == nil {
				ctx = context.WithValue(ctx, ctxFlash, msg)
			}
			http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LangFrom returns the request language.
func LangFrom(r *http.Request) string {
	return i18n.LangFrom(r.Context())
}

// FlashFrom returns the flash message consumed for this request.
func FlashFrom(r *http.Request) string {
	msg, _ := r.Context().Value(ctxFlash).(string)
	return msg
}

// Flash sets a translated flash message cookie using translation code (or literal if missing).
func Flash(w http.ResponseWriter, r *http.Request, code string) {
	msg := i18n.T(LangFrom(r), code)
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: url.QueryEscape(msg), Path: "/", HttpOnly: true})
}
