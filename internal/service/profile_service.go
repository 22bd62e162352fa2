package service

import (
	"context"
	"time"

	"scribe/internal/models"
	"scribe/internal/repository"
	"scribe/internal/validation"
)

// ProfileService manages the one-to-one profile attached to a user.
type ProfileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// CreateProfileInput carries the fields accepted when creating a profile.
type CreateProfileInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

// UpdateProfileInput carries a partial profile update. Zero fields are left unchanged.
type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

// NewProfileService returns a ProfileService backed by the given repositories.
func NewProfileService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// CreateProfile attaches a new profile to the user and returns the user
// carrying it. Existence and exclusivity checks run atomically with the
// insert; on failure nothing is written.
func (s *ProfileService) CreateProfile(ctx context.Context, userID uint, in CreateProfileInput) (*models.User, error) {
	if err := validation.ValidateName("firstName", in.FirstName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName("lastName", in.LastName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.DateOfBirth.IsZero() {
		return nil, models.NewValidationError("dateOfBirth is required")
	}

	profile := &models.Profile{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
	}
	if err := s.profileRepo.CreateForUser(ctx, userID, profile); err != nil {
		return nil, err
	}

	return s.userRepo.GetByIDWithProfile(ctx, userID)
}

// ListProfiles returns all profiles.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// GetProfileByUserID returns the profile of the given user. It distinguishes
// a missing user from a user without a profile; both are NotFound.
func (s *ProfileService) GetProfileByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	user, err := s.userRepo.GetByIDWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		return nil, models.NewNoProfileError(userID)
	}
	return user.Profile, nil
}

// UpdateProfileByUserID applies a partial update to the user's profile and
// returns the persisted profile.
func (s *ProfileService) UpdateProfileByUserID(ctx context.Context, userID uint, in UpdateProfileInput) (*models.Profile, error) {
	user, err := s.userRepo.GetByIDWithProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		return nil, models.NewNoProfileError(userID)
	}

	profile := user.Profile
	if in.FirstName != "" {
		if err := validation.ValidateName("firstName", in.FirstName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		profile.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if err := validation.ValidateName("lastName", in.LastName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		profile.LastName = in.LastName
	}
	if !in.DateOfBirth.IsZero() {
		profile.DateOfBirth = in.DateOfBirth
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteProfileByUserID removes the user's profile.
func (s *ProfileService) DeleteProfileByUserID(ctx context.Context, userID uint) error {
	user, err := s.userRepo.GetByIDWithProfile(ctx, userID)
	if err != nil {
		return err
	}
	if user.Profile == nil {
		return models.NewNoProfileError(userID)
	}
	return s.profileRepo.DeleteByUserID(ctx, userID)
}
