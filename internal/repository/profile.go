package repository

import (
	"context"
	"errors"

	"scribe/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	List(ctx context.Context) ([]models.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	CreateForUser(ctx context.Context, userID uint, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNoProfileError(userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

// CreateForUser attaches a new profile to the user identified by userID.
// The existence and exclusivity checks run inside the same transaction as the
// insert, so a concurrent create cannot slip between check and write. The
// unique index on profiles.user_id backs the check for engines that race past
// the read anyway.
func (r *profileRepository) CreateForUser(ctx context.Context, userID uint, profile *models.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", userID)
			}
			return models.NewInternalError(err)
		}

		var count int64
		if err := tx.Model(&models.Profile{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		if count > 0 {
			return models.NewConflictError("User already has a profile")
		}

		profile.UserID = userID
		if err := tx.Create(profile).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("User already has a profile")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNoProfileError(userID)
	}
	return nil
}
