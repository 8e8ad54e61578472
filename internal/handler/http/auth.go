package http

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/vijaycharanme-code/doc-manager/internal/app"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, session, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user signed up")

	h.setSessionCookie(w, session)
	info := user.Public()
	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgAccountCreated, User: &info}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	user, session, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.ID).Msg("user successfully logged in")

	h.setSessionCookie(w, session)
	info := user.Public()
	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgLoginSuccessful, User: &info}, http.StatusOK)
}

// logout never fails from the client's point of view: the cookie is
// cleared even when the session store reports an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.app.SessionCookieName); err == nil {
		if err = h.services.AuthService.Logout(r.Context(), cookie.Value); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.logout").Msg("session was not deleted")
		}
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgLoggedOut}, http.StatusOK)
}

// me reports the current user, or {success:false} for anonymous callers.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.app.SessionCookieName)
	if err != nil {
		utils.WriteJSON(w, models.Response{Success: false}, http.StatusOK)
		return
	}

	user, err := h.services.AuthService.CurrentUser(r.Context(), cookie.Value)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("anonymous /api/me")
		utils.WriteJSON(w, models.Response{Success: false}, http.StatusOK)
		return
	}

	info := user.Public()
	utils.WriteJSON(w, models.Response{Success: true, User: &info}, http.StatusOK)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.app.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.app.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.app.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.app.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
