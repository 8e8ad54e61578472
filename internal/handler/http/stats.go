package http

import (
	"net/http"

	"github.com/vijaycharanme-code/doc-manager/internal/utils"
	"github.com/vijaycharanme-code/doc-manager/models"
)

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	stats, err := h.services.StatsService.GetStats(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Stats: &stats}, http.StatusOK)
}
