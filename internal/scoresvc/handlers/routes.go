package handlers

import (
	"github.com/go-chi/chi"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Get("/health", h.HealthHandler)

	r.Group(func(r chi.Router) {
		r.Use(h.requireStore)

		r.Get("/players", h.ListPlayersHandler)
		r.Post("/players", h.RegisterPlayerHandler)

		r.Get("/games", h.ListGamesHandler)
		r.Post("/games", h.CreateGameHandler)

		r.Route("/games/{id}", func(r chi.Router) {
			r.Get("/", h.GetGameHandler)
			r.Post("/start", h.StartGameHandler)
			r.Post("/round", h.ApplyRoundHandler)
			r.Post("/undo", h.UndoHandler)
		})
	})
}
