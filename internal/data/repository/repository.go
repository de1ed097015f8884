package repository

import (
	"path/filepath"

	"movieflix/pkg/flatfile"

	"go.uber.org/zap"
)

// Fixed table schemas: header order is part of the on-disk contract and must
// not change.
var (
	movieFields  = []string{"id", "title", "genre", "year"}
	ratingFields = []string{"id", "user_id", "movie_id", "score", "comment"}
	userFields   = []string{"id", "name", "age", "country"}
)

// Backing file names, kept from the original data lake so the ETL and any
// existing volume keep working.
const (
	MoviesFile  = "filmes.csv"
	RatingsFile = "ratings.csv"
	UsersFile   = "users.csv"
)

type Repository struct {
	Movie  MovieRepository
	Rating RatingRepository
	User   UserRepository
}

// NewRepository builds the three table stores under dataDir and creates any
// missing backing file with its header. A missing dataDir is fatal.
func NewRepository(dataDir string, log *zap.Logger) (*Repository, error) {
	movies := flatfile.NewTable(filepath.Join(dataDir, MoviesFile), movieFields, log)
	ratings := flatfile.NewTable(filepath.Join(dataDir, RatingsFile), ratingFields, log)
	users := flatfile.NewTable(filepath.Join(dataDir, UsersFile), userFields, log)

	for _, t := range []*flatfile.Table{movies, ratings, users} {
		if err := t.EnsureExists(); err != nil {
			return nil, err
		}
	}

	return &Repository{
		Movie:  NewMovieRepository(movies, log),
		Rating: NewRatingRepository(ratings, log),
		User:   NewUserRepository(users, log),
	}, nil
}
