package repositories

import (
	"context"

	"sevasetu/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// grievanceRepository handles grievance data access
type grievanceRepository struct {
	db *gorm.DB
}

// NewGrievanceRepository creates a new grievance repository
func NewGrievanceRepository(db *gorm.DB) GrievanceRepository {
	return &grievanceRepository{db: db}
}

// Create creates a new grievance
func (r *grievanceRepository) Create(ctx context.Context, grievance *models.Grievance) error {
	return r.db.WithContext(ctx).Create(grievance).Error
}

// GetByID gets a grievance by ID
func (r *grievanceRepository) GetByID(ctx context.Context, id string) (*models.Grievance, error) {
	var grievance models.Grievance
	err := r.db.WithContext(ctx).First(&grievance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &grievance, nil
}

// GetByUserID gets a user's grievances, newest first
func (r *grievanceRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Grievance, error) {
	var grievances []*models.Grievance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&grievances).Error
	return grievances, err
}

// Update updates a grievance
func (r *grievanceRepository) Update(ctx context.Context, grievance *models.Grievance) error {
	return r.db.WithContext(ctx).Save(grievance).Error
}
