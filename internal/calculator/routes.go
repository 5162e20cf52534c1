package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the catalog endpoints under /calculators.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/calculators", func(r chi.Router) {
		r.Get("/", h.List)
		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/", h.Describe)
			r.Post("/", h.Compute)
			r.Post("/share", h.Share)
			r.Get("/batch/template", h.BatchTemplate)
			r.Post("/batch", h.Batch)
		})
	})
}
