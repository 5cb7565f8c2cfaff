package http //nolint:revive // directory-based package name, imported with alias

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Post("/api/payload", h.HandlePayload)
	r.Post("/api/payload/check", h.HandleCheckPayload)
	r.Post("/api/qr", h.HandleQR)
	r.Get("/api/ogm", h.HandleOGM)
	r.Get("/api/purposes", h.HandlePurposes)

	return r
}
