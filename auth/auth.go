// Package auth identifies browsers with an HMAC-signed client cookie.
//
// The client id is not a login: it only scopes the durable session entries
// of one browser, the way browser storage is scoped to a profile.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type ctxKey string

const (
	clientCookieName = "smart_order_client"
	clientIDCtxKey   = ctxKey("clientID")
	clientCookieTTL  = 365 * 24 * time.Hour
)

var (
	secretMu sync.RWMutex
	secret   = "devsessionsecret"
	secure   bool
)

// SetSecret configures the HMAC key; empty values are ignored.
func SetSecret(s string) {
	if s == "" {
		return
	}
	secretMu.Lock()
	secret = s
	secretMu.Unlock()
}

// SetSecureCookies marks the client cookie Secure (HTTPS deployments).
func SetSecureCookies(v bool) {
	secretMu.Lock()
	secure = v
	secretMu.Unlock()
}

func sign(value string) string {
	secretMu.RLock()
	key := []byte(secret)
	secretMu.RUnlock()
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// IssueClient generates a new client id and sets the signed cookie.
func IssueClient(w http.ResponseWriter) string {
	id := uuid.NewString()
	secretMu.RLock()
	sec := secure
	secretMu.RUnlock()
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookieName,
		Value:    id + "." + sign(id),
		Path:     "/",
		HttpOnly: true,
		Secure:   sec,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(clientCookieTTL),
	})
	return id
}

// ParseClient validates the cookie and returns the client id.
func ParseClient(r *http.Request) (string, bool) {
	c, err := r.Cookie(clientCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	id, sig, ok := strings.Cut(c.Value, ".")
	if !ok || id == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(sign(id))) {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// WithClientID stores the client id in ctx.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDCtxKey, id)
}

// ClientIDFromContext extracts the client id.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDCtxKey).(string)
	return id, ok && id != ""
}

// Middleware attaches the client id to the request context, issuing a new
// cookie when the request carries none or a forged one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := ParseClient(r)
		if !ok {
			id = IssueClient(w)
		}
		next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), id)))
	})
}
