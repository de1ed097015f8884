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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
}

type movieRepository struct {
	table *flatfile.Table
	log   *zap.Logger
}

func NewMovieRepository(table *flatfile.Table, log *zap.Logger) MovieRepository {
	return &movieRepository{
		table: table,
		log:   log.With(zap.String("repository", "movie")),
	}
}

// Create allocates the next movie id and appends the row; the assigned id is
// written back into movie.
func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	rec := flatfile.Record{
		"title": movie.Title,
		"genre": movie.Genre,
		"year":  movie.Year,
	}

	id, err := r.table.AppendAssign(rec)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	movie.ID = id
	return nil
}

// FindByID returns nil, nil when no movie has the given id.
func (r *movieRepository) FindByID(ctx context.Context, id int) (*entity.Movie, error) {
	movies, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, movie := range movies {
		if movie.ID == id {
			return movie, nil
		}
	}
	return nil, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	records, err := r.table.ReadAll()
	if err != nil {
		r.log.Error("Failed to read movies", zap.Error(err))
		return nil, fmt.Errorf("read movies: %w", err)
	}

	movies := make([]*entity.Movie, 0, len(records))
	for _, rec := range records {
		movies = append(movies, movieFromRecord(rec))
	}
	return movies, nil
}

// movieFromRecord normalizes a raw row into a typed movie. Values are trimmed
// on the way in; a non-numeric id maps to 0 and simply never joins a rating.
func movieFromRecord(rec flatfile.Record) *entity.Movie {
	id, _ := strconv.Atoi(strings.TrimSpace(rec["id"]))
	return &entity.Movie{
		ID:    id,
		Title: strings.TrimSpace(rec["title"]),
		Genre: strings.TrimSpace(rec["genre"]),
		Year:  strings.TrimSpace(rec["year"]),
	}
}
