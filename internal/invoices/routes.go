package invoices

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/invoices", h.List)
	r.Get("/invoices/latest", h.Latest)
	r.Get("/invoices/pages", h.Pages)
	r.Get("/invoices/{id}", h.Show)
}
