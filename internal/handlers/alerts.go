package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/smart-order/i18n"
	"github.com/diewo77/smart-order/internal/api"
	"github.com/diewo77/smart-order/validation"
)

// describe turns err into the alert text. op is a catalog code such as
// "error.create"; it is formatted with noun when noun is set.
//
//	validation  -> "Erro de validação: <first rule message>"
//	API error   -> "<op>: <body message or Erro do servidor>"
//	otherwise   -> generic network / internal message
func describe(lang, op, noun string, err error) string {
	var verr *validation.Error
	if errors.As(err, &verr) {
		field, code := verr.First()
		return i18n.T(lang, "alert.validation") + ": " + i18n.Violation(lang, field, code)
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = i18n.T(lang, "alert.server_error")
		}
		prefix := i18n.T(lang, op)
		if noun != "" {
			prefix = i18n.Tf(lang, op, noun)
		}
		return prefix + ": " + msg
	}
	var terr *api.TransportError
	if errors.As(err, &terr) {
		return i18n.T(lang, "alert.network")
	}
	return i18n.T(lang, "alert.internal")
}

// fieldErrors translates every violation of err for inline display.
func fieldErrors(lang string, err error) map[string]string {
	var verr *validation.Error
	if !errors.As(err, &verr) {
		return nil
	}
	out := make(map[string]string, len(verr.Violations))
	for field, code := range verr.Violations {
		out[field] = i18n.Violation(lang, field, code)
	}
	return out
}

// statusFor picks the status of a page re-rendered after a failed action.
func statusFor(err error) int {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusNotFound {
			return apiErr.Status
		}
		if apiErr.Status < http.StatusInternalServerError {
			return http.StatusBadRequest
		}
	}
	return http.StatusBadGateway
}
