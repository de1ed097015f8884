package wire

import (
	"movieflix/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler) {
	// POST /api/ratings - submit a rating, optionally under a user name
	r.Post("/api/ratings", ratingHandler.CreateRating)
}
