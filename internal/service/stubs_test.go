package service

import (
	"context"
	"errors"
	"testing"

	"scribe/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	listFn               func(context.Context) ([]models.User, error)
	getByIDFn            func(context.Context, uint) (*models.User, error)
	getByIDWithProfileFn func(context.Context, uint) (*models.User, error)
	getByUsernameFn      func(context.Context, string) (*models.User, error)
	createFn             func(context.Context, *models.User) error
	saveFn               func(context.Context, *models.User) error
	deleteFn             func(context.Context, uint) error
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithProfile(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDWithProfileFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Save(ctx context.Context, user *models.User) error {
	return s.saveFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		listFn:               func(context.Context) ([]models.User, error) { return nil, nil },
		getByIDFn:            func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithProfileFn: func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:      func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:             func(context.Context, *models.User) error { return nil },
		saveFn:               func(context.Context, *models.User) error { return nil },
		deleteFn:             func(context.Context, uint) error { return nil },
	}
}

type profileRepoStub struct {
	listFn           func(context.Context) ([]models.Profile, error)
	getByUserIDFn    func(context.Context, uint) (*models.Profile, error)
	createForUserFn  func(context.Context, uint, *models.Profile) error
	saveFn           func(context.Context, *models.Profile) error
	deleteByUserIDFn func(context.Context, uint) error
}

func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) CreateForUser(ctx context.Context, userID uint, profile *models.Profile) error {
	return s.createForUserFn(ctx, userID, profile)
}
func (s *profileRepoStub) Save(ctx context.Context, profile *models.Profile) error {
	return s.saveFn(ctx, profile)
}
func (s *profileRepoStub) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.deleteByUserIDFn(ctx, userID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		listFn:           func(context.Context) ([]models.Profile, error) { return nil, nil },
		getByUserIDFn:    func(context.Context, uint) (*models.Profile, error) { return &models.Profile{}, nil },
		createForUserFn:  func(context.Context, uint, *models.Profile) error { return nil },
		saveFn:           func(context.Context, *models.Profile) error { return nil },
		deleteByUserIDFn: func(context.Context, uint) error { return nil },
	}
}

type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	listByUserIDFn func(context.Context, uint, int, int) ([]models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]models.Post, error) {
	return s.listByUserIDFn(ctx, userID, limit, offset)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:       func(context.Context, *models.Post) error { return nil },
		listByUserIDFn: func(context.Context, uint, int, int) ([]models.Post, error) { return nil, nil },
	}
}

// assertAppError asserts that err is an AppError carrying the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeValidation)
}

func assertConflictError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeConflict)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeNotFound)
}
