package repositories

import (
	"context"

	"sevasetu/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// applicationRepository handles application data access
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create creates a new application
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// GetByID gets an application by ID with its scheme
func (r *applicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Scheme").
		First(&application, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// GetByUserID gets a user's applications, newest first, with schemes
func (r *applicationRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Scheme").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

// Update updates an application
func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}
