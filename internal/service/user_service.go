// Package service holds the business logic between HTTP handlers and repositories.
package service

import (
	"context"
	"time"

	"scribe/internal/models"
	"scribe/internal/repository"
	"scribe/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService implements user CRUD on top of the user repository.
type UserService struct {
	userRepo repository.UserRepository
	unique   *validation.UsernameUniqueness
}

// CreateUserInput carries the fields accepted when creating a user.
type CreateUserInput struct {
	Username string
	Password string
}

// UpdateUserInput carries a partial user update. Empty fields are left unchanged.
type UpdateUserInput struct {
	Username string
	Password string
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		unique:   validation.NewUsernameUniqueness(userRepo),
	}
}

// ListUsers returns all users with their profiles preloaded.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetUserByID returns the user or a NotFound error.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser validates the input, runs the advisory uniqueness check, hashes
// the password, and persists the user. The unique index on username remains
// the authority; its violation also surfaces as a Conflict.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if err := s.unique.Validate(ctx, in.Username); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:  in.Username,
		Password:  string(hashed),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial update by id and returns the persisted user.
func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if err := s.unique.Validate(ctx, in.Username); err != nil {
			return nil, err
		}
		user.Username = in.Username
	}

	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user together with its profile and posts.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
