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

type RatingService interface {
	CreateRating(ctx context.Context, req *request.CreateRatingRequest) (*response.RatingResponse, error)
}

type ratingService struct {
	movieRepo  repository.MovieRepository
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
	log        *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		movieRepo:  repo.Movie,
		ratingRepo: repo.Rating,
		userRepo:   repo.User,
		log:        log.With(zap.String("service", "rating")),
	}
}

// CreateRating validates score and movie, resolves the submitting user by
// display name (find-or-create; absent name means the anonymous sentinel) and
// appends the rating. The name lookup and the possible user append are two
// steps with no lock across them: two concurrent submissions for the same new
// name can create that user twice, an accepted race. A failure after the user
// append leaves an orphaned but valid user; that too is accepted, not masked.
func (s *ratingService) CreateRating(ctx context.Context, req *request.CreateRatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create rating validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	movieID, err := req.MovieID.Int()
	if err != nil {
		return nil, &ValidationError{Field: "movieId", Message: "must be an integer"}
	}

	score, err := req.Score.Int()
	if err != nil || score < entity.MinScore || score > entity.MaxScore {
		return nil, &ValidationError{
			Field:   "score",
			Message: fmt.Sprintf("must be an integer between %d and %d", entity.MinScore, entity.MaxScore),
		}
	}

	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %d: %w", movieID, ErrNotFound)
	}

	userID, err := s.resolveUser(ctx, strings.TrimSpace(req.User))
	if err != nil {
		return nil, err
	}

	rating := &entity.Rating{
		UserID:  userID,
		MovieID: movieID,
		Score:   score,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	s.log.Info("Rating created",
		zap.Int("rating_id", rating.ID),
		zap.Int("movie_id", movieID),
		zap.Int("user_id", userID),
		zap.Int("score", score),
	)

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

// resolveUser maps a display name to a user id, creating a name-only user on
// first sight. An empty name is the anonymous sentinel.
func (s *ratingService) resolveUser(ctx context.Context, name string) (int, error) {
	if name == "" {
		return entity.AnonymousUserID, nil
	}
	if err := checkLineSafe("user", name); err != nil {
		return 0, err
	}

	existing, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	user := &entity.User{Name: name}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return 0, err
	}

	s.log.Info("User created for rating",
		zap.Int("user_id", user.ID),
		zap.String("name", name),
	)
	return user.ID, nil
}
