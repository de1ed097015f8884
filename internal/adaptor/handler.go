package adaptor

import (
	"errors"
	"net/http"

	"movieflix/internal/usecase"
	"movieflix/pkg/flatfile"
	"movieflix/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie  *MovieHandler
	Rating *RatingHandler
	User   *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:  NewMovieHandler(service.Movie, log),
		Rating: NewRatingHandler(service.Rating, log),
		User:   NewUserHandler(service.User, log),
	}
}

// handleServiceError maps service error kinds to HTTP responses.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Warn(operation+" validation failed",
			zap.String("field", vErr.Field),
			zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{vErr.Field: vErr.Message})

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, flatfile.ErrCorruptData):
		log.Error("Failed to "+operation+" - corrupt table", zap.Error(err))
		utils.ResponseInternalError(w, "Stored data is corrupt")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
