package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getVersion)
	})

	// CMS-facing routes, authorized by the shared hook token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/hooks/deleted", h.pagesDeleted)
		r.Post("/api/sync", h.triggerSync)
		r.Get("/api/history", h.listHistory)
		r.Get("/api/history/latest", h.latestHistory)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
