package usecase

import (
	"movieflix/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie  MovieService
	Rating RatingService
	User   UserService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:  NewMovieService(repo, log),
		Rating: NewRatingService(repo, log),
		User:   NewUserService(repo.User, log),
	}
}
