package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/adapters/persistence/repositories"
	"sevasetu/internal/core/domain"
)

// SchemeService serves the scheme catalog and per-scheme eligibility checks
type SchemeService struct {
	schemeRepo  repositories.SchemeRepository
	profileRepo repositories.ProfileRepository
	eligibility *EligibilityService
}

// NewSchemeService creates a scheme service
func NewSchemeService(schemeRepo repositories.SchemeRepository, profileRepo repositories.ProfileRepository, eligibility *EligibilityService) *SchemeService {
	return &SchemeService{
		schemeRepo:  schemeRepo,
		profileRepo: profileRepo,
		eligibility: eligibility,
	}
}

// List returns a filtered page of active schemes with the total match count
func (s *SchemeService) List(ctx context.Context, filters *repositories.SchemeFilters, offset, limit int) ([]*models.Scheme, int64, error) {
	return s.schemeRepo.List(ctx, filters, offset, limit)
}

// GetByID returns an active scheme by primary key
func (s *SchemeService) GetByID(ctx context.Context, id string) (*models.Scheme, error) {
	scheme, err := s.schemeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSchemeNotFound
		}
		return nil, err
	}
	return scheme, nil
}

// Categories returns the distinct categories across active schemes
func (s *SchemeService) Categories(ctx context.Context) ([]string, error) {
	return s.schemeRepo.Categories(ctx)
}

// Popular returns the most applied-to active schemes
func (s *SchemeService) Popular(ctx context.Context, limit int) ([]*models.Scheme, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.schemeRepo.Popular(ctx, limit)
}

// CheckEligibility scores the user's profile against one scheme
func (s *SchemeService) CheckEligibility(ctx context.Context, userID, schemeID string) (*EligibilityResult, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	scheme, err := s.GetByID(ctx, schemeID)
	if err != nil {
		return nil, err
	}

	result := s.eligibility.CheckEligibility(profile, scheme)
	return &result, nil
}
