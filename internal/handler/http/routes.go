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
		r.Post("/api/login", h.login)
	})

	// routes protected by bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/items", h.addItem)
		r.Get("/api/items", h.listItems)
		r.Get("/api/items/{id}", h.getItem)
		r.Put("/api/items/{id}", h.editItem)
		r.Delete("/api/items/{id}", h.deleteItem)

		r.Post("/api/lots", h.addLot)
		r.Get("/api/lots", h.listLots)
		r.Get("/api/lots/{id}", h.getLot)
		r.Put("/api/lots/{id}", h.editLot)
		r.Delete("/api/lots/{id}", h.deleteLot)
	})

	return router
}
