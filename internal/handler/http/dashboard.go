package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/secure-e-diary/internal/caesar"
	"github.com/MKhiriev/secure-e-diary/internal/logger"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

// dashboardRefreshSeconds is how often the page reloads itself.
const dashboardRefreshSeconds = 10

type dashboardEntry struct {
	ID            string
	Timestamp     string
	EncryptedText string
}

type dashboardView struct {
	Key            int
	Count          int
	Entries        []dashboardEntry
	RefreshSeconds int
}

// dashboard renders every stored entry in ciphertext. Entry text and ids are
// escaped by html/template.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entries := h.services.EntryService.AllEntries(r.Context())

	view := dashboardView{
		Key:            caesar.DefaultShift,
		Count:          len(entries),
		Entries:        make([]dashboardEntry, 0, len(entries)),
		RefreshSeconds: dashboardRefreshSeconds,
	}
	for _, entry := range entries {
		view.Entries = append(view.Entries, dashboardEntry{
			ID:            entry.ID,
			Timestamp:     entry.Timestamp(),
			EncryptedText: entry.Text,
		})
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, view); err != nil {
		log.Err(err).Str("func", "*Handler.dashboard").Msg("error rendering dashboard")
		http.Error(w, internalServerErrorMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("func", "*Handler.dashboard").Msg("error writing response")
	}
}
