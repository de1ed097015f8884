package wire

import (
	"movieflix/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - list movies joined with their rating stats
	r.Get("/api/movies", movieHandler.GetMovies)

	// POST /api/movies - add a movie to the catalog
	r.Post("/api/movies", movieHandler.CreateMovie)
}
