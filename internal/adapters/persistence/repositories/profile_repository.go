package repositories

import (
	"context"

	"sevasetu/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// profileRepository handles citizen profile data access
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create creates a new citizen profile
func (r *profileRepository) Create(ctx context.Context, profile *models.CitizenProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByUserID gets the profile owned by a user
func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*models.CitizenProfile, error) {
	var profile models.CitizenProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update updates a citizen profile
func (r *profileRepository) Update(ctx context.Context, profile *models.CitizenProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// ListUserIDs returns the user IDs of all stored profiles, used by the
// nightly recommendation sweep
func (r *profileRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.CitizenProfile{}).
		Order("created_at ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}
