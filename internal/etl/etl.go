// Package etl loads the flat-file catalog into the Postgres data warehouse
// and refreshes the data-mart views. It runs as its own binary against the
// same data lake the API server appends to.
package etl

import (
	"context"
	"fmt"
	"time"

	"movieflix/internal/data/repository"
	"movieflix/pkg/database"
	"movieflix/pkg/utils"

	"go.uber.org/zap"
)

const (
	connectRetries = 10
	connectDelay   = 3 * time.Second
)

// WaitForWarehouse retries the pool setup until Postgres accepts connections,
// mirroring a compose environment where the warehouse starts alongside us.
func WaitForWarehouse(config utils.WarehouseConfig, log *zap.Logger) (database.PgxIface, error) {
	var lastErr error
	for attempt := 1; attempt <= connectRetries; attempt++ {
		db, err := database.InitDB(config)
		if err == nil {
			log.Info("Warehouse connected",
				zap.String("host", config.Host),
				zap.Int("attempt", attempt),
			)
			return db, nil
		}
		lastErr = err
		log.Warn("Warehouse not ready",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", connectRetries),
			zap.Error(err),
		)
		time.Sleep(connectDelay)
	}
	return nil, fmt.Errorf("warehouse not available after %d attempts: %w", connectRetries, lastErr)
}

// Runner owns one full extract-transform-load pass.
type Runner struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewRunner(db database.PgxIface, repo *repository.Repository, log *zap.Logger) *Runner {
	return &Runner{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("component", "etl")),
	}
}

// Run replaces the warehouse content with a fresh load of the catalog tables
// and recreates the data-mart views.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.ensureSchema(ctx); err != nil {
		return err
	}
	if err := r.truncate(ctx); err != nil {
		return err
	}

	if err := r.loadMovies(ctx); err != nil {
		return err
	}
	if err := r.loadUsers(ctx); err != nil {
		return err
	}
	if err := r.loadRatings(ctx); err != nil {
		return err
	}

	return r.createViews(ctx)
}

func (r *Runner) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *Runner) truncate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `TRUNCATE TABLE ratings, movies, users RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("truncate warehouse: %w", err)
	}
	r.log.Info("Warehouse tables truncated")
	return nil
}

func (r *Runner) loadMovies(ctx context.Context) error {
	movies, err := r.repo.Movie.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("extract movies: %w", err)
	}

	rows := CleanMovies(movies)
	for _, row := range rows {
		_, err := r.db.Exec(ctx,
			`INSERT INTO movies (id, title, genre, year) VALUES ($1, $2, $3, $4)`,
			row.ID, row.Title, row.Genre, row.Year,
		)
		if err != nil {
			return fmt.Errorf("load movie %d: %w", row.ID, err)
		}
	}

	r.log.Info("Movies loaded",
		zap.Int("extracted", len(movies)),
		zap.Int("loaded", len(rows)),
	)
	return nil
}

func (r *Runner) loadUsers(ctx context.Context) error {
	users, err := r.repo.User.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("extract users: %w", err)
	}

	rows := CleanUsers(users)
	for _, row := range rows {
		_, err := r.db.Exec(ctx,
			`INSERT INTO users (id, name, age, country) VALUES ($1, $2, $3, $4)`,
			row.ID, row.Name, row.Age, row.Country,
		)
		if err != nil {
			return fmt.Errorf("load user %d: %w", row.ID, err)
		}
	}

	r.log.Info("Users loaded",
		zap.Int("extracted", len(users)),
		zap.Int("loaded", len(rows)),
	)
	return nil
}

func (r *Runner) loadRatings(ctx context.Context) error {
	ratings, err := r.repo.Rating.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("extract ratings: %w", err)
	}

	rows := CleanRatings(ratings)
	for _, row := range rows {
		_, err := r.db.Exec(ctx,
			`INSERT INTO ratings (id, user_id, movie_id, score) VALUES ($1, $2, $3, $4)`,
			row.ID, row.UserID, row.MovieID, row.Score,
		)
		if err != nil {
			return fmt.Errorf("load rating %d: %w", row.ID, err)
		}
	}

	r.log.Info("Ratings loaded",
		zap.Int("extracted", len(ratings)),
		zap.Int("loaded", len(rows)),
	)
	return nil
}

func (r *Runner) createViews(ctx context.Context) error {
	for name, stmt := range viewStatements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create view %s: %w", name, err)
		}
		r.log.Info("View created", zap.String("view", name))
	}
	return nil
}
