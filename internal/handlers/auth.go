package handlers

import (
	"net/http"
	"net/url"

	"github.com/diewo77/smart-order/auth"
	"github.com/diewo77/smart-order/i18n"
	"github.com/diewo77/smart-order/internal/api"
	"github.com/diewo77/smart-order/internal/middleware"
	"github.com/diewo77/smart-order/internal/models"
	"github.com/diewo77/smart-order/internal/session"
	"github.com/diewo77/smart-order/view"
)

type AuthHandler struct {
	env      *Env
	registry *session.Registry
}

func NewAuthHandler(env *Env, registry *session.Registry) *AuthHandler {
	return &AuthHandler{env: env, registry: registry}
}

func (h *AuthHandler) SignInPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "signin.html", nil, nil, "")
}

// SignIn posts the credentials to /sessions and saves the returned session
// in the client's store. The next request is routed to the management tree.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	lang := middleware.LangFrom(r)
	creds, verr := parseSignIn(r.PostForm)
	if verr != nil {
		h.render(w, r, http.StatusUnprocessableEntity, "signin.html", r.PostForm, verr, describe(lang, "error.signin", "", verr))
		return
	}
	store, ok := session.FromContext(r.Context())
	if !ok {
		logger(r).Error("sign-in without a session store")
		h.render(w, r, http.StatusInternalServerError, "signin.html", r.PostForm, nil, i18n.T(lang, "alert.internal"))
		return
	}
	sess, err := api.Post[models.Session](r.Context(), h.env.API, api.PathSessions, creds)
	if err != nil {
		logger(r).Warn("sign-in rejected", "email", creds.Email, "error", err)
		h.render(w, r, statusFor(err), "signin.html", r.PostForm, nil, describe(lang, "error.signin", "", err))
		return
	}
	if err := store.Save(r.Context(), sess); err != nil {
		logger(r).Error("session save failed", "error", err)
		h.render(w, r, http.StatusInternalServerError, "signin.html", r.PostForm, nil, i18n.T(lang, "alert.internal"))
		return
	}
	logger(r).Info("signed in", "user", sess.User.ID, "role", sess.User.Role)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) SignUpPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "signup.html", nil, nil, "")
}

// SignUp creates the account and sends the user back to sign in.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	lang := middleware.LangFrom(r)
	in, verr := parseSignUp(r.PostForm)
	if verr != nil {
		h.render(w, r, http.StatusUnprocessableEntity, "signup.html", r.PostForm, verr, describe(lang, "error.signup", "", verr))
		return
	}
	if _, err := api.Create(r.Context(), h.env.API, api.PathUsers, in); err != nil {
		logger(r).Warn("sign-up rejected", "email", in.Email, "error", err)
		h.render(w, r, statusFor(err), "signup.html", r.PostForm, nil, describe(lang, "error.signup", "", err))
		return
	}
	middleware.Flash(w, r, "auth.signed_up")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session and forgets the store, so the next request
// starts over from loading.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if store, ok := session.FromContext(r.Context()); ok {
		if err := store.Remove(r.Context()); err != nil {
			logger(r).Error("session remove failed", "error", err)
		}
	}
	if id, ok := auth.ClientIDFromContext(r.Context()); ok && h.registry != nil {
		h.registry.Forget(id)
	}
	middleware.Flash(w, r, "auth.signed_out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, form url.Values, formErr error, alert string) {
	lang := middleware.LangFrom(r)
	title := "auth.signin"
	if page == "signup.html" {
		title = "auth.signup"
	}
	data := map[string]any{
		"Title":  view.Title(i18n.T(lang, title)),
		"Form":   form,
		"Errors": fieldErrors(lang, formErr),
		"Alert":  alert,
	}
	if err := view.RenderStatus(w, r, status, page, data); err != nil {
		logger(r).Error("render failed", "template", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
