package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/MKhiriev/secure-e-diary/internal/utils"
	"github.com/MKhiriev/secure-e-diary/models"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 100 << 10

func (h *Handler) saveEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SaveRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	entry, err := h.services.EntryService.SaveEntry(r.Context(), request)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.SaveResponse{Success: true, ID: entry.ID}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.saveEntry").Msg("error writing response")
	}
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ids := h.services.EntryService.ListEntryIDs(r.Context())
	if ids == nil {
		ids = []string{}
	}

	if _, err := utils.WriteJSON(w, models.EntriesResponse{IDs: ids}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Msg("error writing response")
	}
}

func (h *Handler) decryptEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.DecryptRequest
	if !h.decodeBody(w, r, &request) {
		return
	}

	decrypted, err := h.services.EntryService.DecryptEntry(r.Context(), request)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.DecryptResponse{Success: true, Decrypted: decrypted}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.decryptEntry").Msg("error writing response")
	}
}

// decodeBody reads exactly one JSON value into dst. An empty body leaves dst at its
// zero value so the service reports the missing fields. It writes the error
// response itself and returns false when the body is unusable.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		// the body must hold exactly one JSON value
		if err = dec.Decode(&json.RawMessage{}); errors.Is(err, io.EOF) {
			return true
		}
		if err == nil {
			err = errTrailingData
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Warn().Int64("limit", tooLarge.Limit).Msg(bodyTooLargeMessage)
		utils.WriteError(w, bodyTooLargeMessage, http.StatusRequestEntityTooLarge)
		return false
	}

	log.Err(err).Str("func", "*Handler.decodeBody").Msg(invalidJSONMessage)
	utils.WriteError(w, invalidJSONMessage, http.StatusBadRequest)
	return false
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Debug()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg("request rejected")

	utils.WriteError(w, messageFromError(err), status)
}
