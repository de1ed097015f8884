package adaptor

import (
	"encoding/json"
	"net/http"

	"movieflix/internal/dto/request"
	"movieflix/internal/usecase"
	"movieflix/pkg/utils"

	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// CreateRating handles POST /api/ratings
func (h *RatingHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rating, err := h.service.CreateRating(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create rating")
		return
	}

	utils.ResponseCreated(w, "Rating created successfully", rating)
}
