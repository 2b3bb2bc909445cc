package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/vault/status", h.getVaultStatus)
		r.Post("/api/vault/master", h.setMasterKey)
		r.Post("/api/session", h.openSession)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Delete("/api/session", h.closeSession)

		r.Get("/api/secrets", h.listSecrets)
		r.Post("/api/secrets", h.createSecret)
		r.Get("/api/generate", h.generatePassword)
		r.Get("/api/secrets/{name}", h.readSecret)
		r.Delete("/api/secrets/{name}", h.deleteSecret)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
