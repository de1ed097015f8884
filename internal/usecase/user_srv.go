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

type UserService interface {
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, response.UserToResponse(user))
	}
	return result, nil
}

// CreateUser appends a user, either under a client-supplied id (rejected with
// a conflict when it is already taken) or under the next allocated one.
func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}
	for field, value := range map[string]string{
		"name":    req.Name,
		"country": req.Country,
	} {
		if err := checkLineSafe(field, value); err != nil {
			return nil, err
		}
	}

	id := 0
	if !req.ID.IsZero() {
		var err error
		id, err = req.ID.Int()
		if err != nil || id < 1 {
			// id 0 is reserved for anonymous ratings and can never be taken.
			return nil, &ValidationError{Field: "id", Message: "must be a positive integer"}
		}

		existing, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("user id %d: %w", id, ErrConflict)
		}
	}

	age := strings.TrimSpace(req.Age.String())
	if age != "" {
		if _, err := req.Age.Int(); err != nil {
			return nil, &ValidationError{Field: "age", Message: "must be an integer"}
		}
	}

	user := &entity.User{
		ID:      id,
		Name:    req.Name,
		Age:     age,
		Country: req.Country,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("User created",
		zap.Int("user_id", user.ID),
		zap.String("name", user.Name),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}
