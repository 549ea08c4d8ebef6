package http

import (
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
)

// getServerVersion returns the full build metadata of the running binary.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, buildInfo, http.StatusOK)
}
