package repositories

import (
	"context"

	"sevasetu/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// recommendationRepository handles recommendation data access
type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new recommendation repository
func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

// GetByUserID returns a user's stored recommendations, highest score first
func (r *recommendationRepository) GetByUserID(ctx context.Context, userID string) ([]*models.Recommendation, error) {
	var recs []*models.Recommendation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("score DESC, created_at ASC").
		Find(&recs).Error
	return recs, err
}

// ReplaceForUser swaps a user's recommendation set in one transaction, so a
// concurrent reader sees either the old set or the new one, never a mix.
func (r *recommendationRepository) ReplaceForUser(ctx context.Context, userID string, recs []*models.Recommendation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Recommendation{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.Create(&recs).Error
	})
}

// DeleteByUserID removes all recommendations of a user
func (r *recommendationRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Recommendation{}).Error
}
