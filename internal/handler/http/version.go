package http

import (
	"context"
	"net/http"

	"github.com/vijaycharanme-code/doc-manager/internal/app"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

// Pinger reports database reachability. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, models.Response{Success: true, Version: serverVersion}, http.StatusOK)
}

// index replaces the single page frontend with a short API banner.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Response{
		Success: true,
		Message: app.MsgDocumentManagerUp,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		if err := h.pinger.PingContext(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("database ping failed")
			utils.WriteJSON(w, models.Response{Success: false, Message: app.MsgInternalServerError}, http.StatusServiceUnavailable)
			return
		}
	}

	utils.WriteJSON(w, models.Response{Success: true}, http.StatusOK)
}
