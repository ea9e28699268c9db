package http

import (
	"net/http"

	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing build info failed")
	}
}
