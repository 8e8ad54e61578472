package http

import (
	"context"
	"net/http"

	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/service"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
)

// auth is an HTTP middleware that enforces session authentication.
//
// It reads the session cookie, resolves it via
// [service.AuthService.CurrentUser] and on success stores the user ID in the
// request context under [utils.UserIDCtxKey]. The request logger gains a
// "user_id" field.
//
// Requests without a cookie, or with an unknown or expired session, are
// rejected with 401 and the "Please log in first" message.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.app.SessionCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, r, service.ErrNotAuthenticated)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.CurrentUser(ctx, cookie.Value)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.ID)
		ctx = logger.WithUserID(ctx, user.ID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
