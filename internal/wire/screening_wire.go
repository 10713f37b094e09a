package wire

import (
	"cinema-screening/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireScreening(r chi.Router, screeningHandler *adaptor.ScreeningHandler) {
	r.Route("/api/cinema", func(r chi.Router) {
		r.Get("/", screeningHandler.ListScreenings)       // GET /api/cinema?title=
		r.Post("/", screeningHandler.CreateScreening)     // POST /api/cinema
		r.Delete("/", screeningHandler.DeleteAll)         // DELETE /api/cinema
		r.Get("/{id}", screeningHandler.GetScreening)     // GET /api/cinema/{id}
		r.Put("/{id}", screeningHandler.Reschedule)       // PUT /api/cinema/{id}
		r.Post("/{id}/reserve", screeningHandler.Reserve) // POST /api/cinema/{id}/reserve
	})
}
