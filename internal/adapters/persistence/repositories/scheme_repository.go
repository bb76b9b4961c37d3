package repositories

import (
	"context"

	"sevasetu/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SchemeFilters narrows catalog listings
type SchemeFilters struct {
	Category  string
	State     string
	MaxIncome *int
	Search    string
}

// schemeRepository handles scheme catalog data access
type schemeRepository struct {
	db *gorm.DB
}

// NewSchemeRepository creates a new scheme repository
func NewSchemeRepository(db *gorm.DB) SchemeRepository {
	return &schemeRepository{db: db}
}

// Create creates a new scheme
func (r *schemeRepository) Create(ctx context.Context, scheme *models.Scheme) error {
	return r.db.WithContext(ctx).Create(scheme).Error
}

// GetAllActive returns the active catalog in insertion order. The ordering
// is the tie-break for equal recommendation scores, so it must stay
// deterministic.
func (r *schemeRepository) GetAllActive(ctx context.Context) ([]*models.Scheme, error) {
	var schemes []*models.Scheme
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&schemes).Error
	return schemes, err
}

// GetByID gets an active scheme by ID. Deactivated schemes resolve as not
// found, which lets stale recommendations drop out of reads.
func (r *schemeRepository) GetByID(ctx context.Context, id string) (*models.Scheme, error) {
	var scheme models.Scheme
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&scheme).Error
	if err != nil {
		return nil, err
	}
	return &scheme, nil
}

// List returns active schemes matching the filters, paginated
func (r *schemeRepository) List(ctx context.Context, filters *SchemeFilters, offset, limit int) ([]*models.Scheme, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Scheme{}).Where("is_active = ?", true)

	if filters != nil {
		if filters.Category != "" {
			query = query.Where("category = ?", filters.Category)
		}
		if filters.State != "" {
			// Central schemes (state IS NULL) apply everywhere
			query = query.Where("state = ? OR state IS NULL", filters.State)
		}
		if filters.MaxIncome != nil {
			query = query.Where("max_income IS NULL OR max_income >= ?", *filters.MaxIncome)
		}
		if filters.Search != "" {
			like := "%" + filters.Search + "%"
			query = query.Where("name LIKE ? OR description LIKE ? OR ministry LIKE ?", like, like, like)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schemes []*models.Scheme
	err := query.
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&schemes).Error

	return schemes, total, err
}

// Categories returns the distinct categories of active schemes
func (r *schemeRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&models.Scheme{}).
		Where("is_active = ?", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// Popular returns the active schemes with the most applications
func (r *schemeRepository) Popular(ctx context.Context, limit int) ([]*models.Scheme, error) {
	var schemes []*models.Scheme
	err := r.db.WithContext(ctx).Model(&models.Scheme{}).
		Select("schemes.*, COUNT(applications.id) AS application_count").
		Joins("LEFT JOIN applications ON applications.scheme_id = schemes.id").
		Where("schemes.is_active = ?", true).
		Group("schemes.id").
		Order("application_count DESC, schemes.created_at ASC").
		Limit(limit).
		Find(&schemes).Error
	return schemes, err
}

// ExistsByName checks if a scheme with the given name exists, used by the
// seeder to stay idempotent
func (r *schemeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Scheme{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}
