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

type UserRepository interface {
	// Create appends the user. With ID 0 the next id is allocated and written
	// back; a non-zero ID is used as supplied (the caller checks collisions).
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int) (*entity.User, error)
	FindByName(ctx context.Context, name string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
}

type userRepository struct {
	table *flatfile.Table
	log   *zap.Logger
}

func NewUserRepository(table *flatfile.Table, log *zap.Logger) UserRepository {
	return &userRepository{
		table: table,
		log:   log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	rec := flatfile.Record{
		"name":    user.Name,
		"age":     user.Age,
		"country": user.Country,
	}

	if user.ID != 0 {
		rec["id"] = strconv.Itoa(user.ID)
		if err := r.table.Append(rec); err != nil {
			r.log.Error("Failed to create user",
				zap.Error(err),
				zap.Int("id", user.ID),
			)
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	}

	id, err := r.table.AppendAssign(rec)
	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("name", user.Name),
		)
		return fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return nil
}

// FindByID returns nil, nil when no user has the given id.
func (r *userRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	users, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

// FindByName matches the display name exactly and returns the first hit in
// file order, or nil, nil when there is none.
func (r *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	users, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Name == name {
			return user, nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	records, err := r.table.ReadAll()
	if err != nil {
		r.log.Error("Failed to read users", zap.Error(err))
		return nil, fmt.Errorf("read users: %w", err)
	}

	users := make([]*entity.User, 0, len(records))
	for _, rec := range records {
		users = append(users, userFromRecord(rec))
	}
	return users, nil
}

func userFromRecord(rec flatfile.Record) *entity.User {
	id, _ := strconv.Atoi(strings.TrimSpace(rec["id"]))
	return &entity.User{
		ID:      id,
		Name:    strings.TrimSpace(rec["name"]),
		Age:     strings.TrimSpace(rec["age"]),
		Country: strings.TrimSpace(rec["country"]),
	}
}
