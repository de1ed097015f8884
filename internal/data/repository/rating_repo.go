package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"movieflix/internal/data/entity"
	"movieflix/pkg/flatfile"

	"go.uber.org/zap"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindAll(ctx context.Context) ([]*entity.Rating, error)
}

type ratingRepository struct {
	table *flatfile.Table
	log   *zap.Logger
}

func NewRatingRepository(table *flatfile.Table, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		table: table,
		log:   log.With(zap.String("repository", "rating")),
	}
}

// Create allocates the next rating id and appends the row; the assigned id is
// written back into rating.
func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	rec := flatfile.Record{
		"user_id":  strconv.Itoa(rating.UserID),
		"movie_id": strconv.Itoa(rating.MovieID),
		"score":    strconv.Itoa(rating.Score),
		"comment":  rating.Comment,
	}

	id, err := r.table.AppendAssign(rec)
	if err != nil {
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.Int("movie_id", rating.MovieID),
		)
		return fmt.Errorf("create rating: %w", err)
	}

	rating.ID = id
	return nil
}

func (r *ratingRepository) FindAll(ctx context.Context) ([]*entity.Rating, error) {
	records, err := r.table.ReadAll()
	if err != nil {
		r.log.Error("Failed to read ratings", zap.Error(err))
		return nil, fmt.Errorf("read ratings: %w", err)
	}

	ratings := make([]*entity.Rating, 0, len(records))
	for _, rec := range records {
		ratings = append(ratings, ratingFromRecord(rec))
	}
	return ratings, nil
}

func ratingFromRecord(rec flatfile.Record) *entity.Rating {
	id, _ := strconv.Atoi(strings.TrimSpace(rec["id"]))
	userID, _ := strconv.Atoi(strings.TrimSpace(rec["user_id"]))
	movieID, _ := strconv.Atoi(strings.TrimSpace(rec["movie_id"]))
	// Score 0 marks a row whose score column is not numeric: the row still
	// counts toward a movie's rating count, its score never enters the average.
	score, err := strconv.Atoi(strings.TrimSpace(rec["score"]))
	if err != nil {
		score = 0
	}
	return &entity.Rating{
		ID:      id,
		UserID:  userID,
		MovieID: movieID,
		Score:   score,
		Comment: strings.TrimSpace(rec["comment"]),
	}
}
