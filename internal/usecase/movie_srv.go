package usecase

import (
	"context"
	"fmt"
	"strings"

	"movieflix/internal/data/entity"
	"movieflix/internal/data/repository"
	"movieflix/internal/dto/request"
	"movieflix/internal/dto/response"
	"movieflix/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	ListMoviesWithRatings(ctx context.Context) ([]response.MovieWithRatingsResponse, error)
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	movieRepo  repository.MovieRepository
	ratingRepo repository.RatingRepository
	log        *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		movieRepo:  repo.Movie,
		ratingRepo: repo.Rating,
		log:        log.With(zap.String("service", "movie")),
	}
}

// ListMoviesWithRatings reads both tables once and joins in memory: every
// movie gets the floored average of its numeric scores (or the no-rating
// sentinel) and the count of all ratings referencing it.
func (s *movieService) ListMoviesWithRatings(ctx context.Context) ([]response.MovieWithRatingsResponse, error) {
	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	ratings, err := s.ratingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	tallies := tallyRatings(ratings)

	result := make([]response.MovieWithRatingsResponse, 0, len(movies))
	for _, movie := range movies {
		t := tallies[movie.ID]
		avg := response.AverageScore{Sum: t.sum, Scored: t.scored}
		result = append(result, response.MovieWithRatings(movie, avg, t.count))
	}

	s.log.Debug("Movies listed",
		zap.Int("movies", len(movies)),
		zap.Int("ratings", len(ratings)),
	)

	return result, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}
	for field, value := range map[string]string{
		"title": req.Title,
		"genre": req.Genre,
	} {
		if err := checkLineSafe(field, value); err != nil {
			return nil, err
		}
	}

	movie := &entity.Movie{
		Title: req.Title,
		Genre: req.Genre,
		Year:  strings.TrimSpace(req.Year.String()),
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.log.Info("Movie created",
		zap.Int("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}
