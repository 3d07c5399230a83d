package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.withCORS, withGZip)

	router.Get("/", h.dashboard)
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)

	router.Post("/save", h.saveEntry)
	router.Get("/entries", h.listEntries)
	router.Post("/decrypt", h.decryptEntry)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
