package http

import (
	"net/http"

	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/utils"
	"github.com/MKhiriev/secure-e-diary/models"
)

// statusOK is the only status ever reported by GET /health.
const statusOK = "OK"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := models.HealthResponse{
		Status:  statusOK,
		Entries: h.services.EntryService.CountEntries(r.Context()),
	}

	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("error writing response")
	}
}
