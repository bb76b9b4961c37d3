package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/adapters/persistence/repositories"
	"sevasetu/internal/core/domain"
)

// MaxRecommendations caps how many schemes are persisted per citizen
const MaxRecommendations = 10

const (
	reasonEligible          = "You are eligible for this scheme."
	reasonPartiallyEligible = "You are partially eligible for this scheme."
)

// RecommendationWithScheme is a stored recommendation joined with its scheme
// and a freshly computed eligibility breakdown
type RecommendationWithScheme struct {
	ID                 string                   `json:"id"`
	UserID             string                   `json:"userId"`
	Scheme             *models.Scheme           `json:"scheme"`
	Score              float64                  `json:"score"`
	Reason             string                   `json:"reason"`
	EligibilityStatus  domain.EligibilityStatus `json:"eligibilityStatus"`
	EligibilityDetails EligibilityResult        `json:"eligibilityDetails"`
	GeneratedAt        time.Time                `json:"generatedAt"`
}

// RecommendationService computes and serves per-citizen scheme rankings
type RecommendationService struct {
	profileRepo repositories.ProfileRepository
	schemeRepo  repositories.SchemeRepository
	recRepo     repositories.RecommendationRepository
	eligibility *EligibilityService
}

// NewRecommendationService creates a recommendation service
func NewRecommendationService(
	profileRepo repositories.ProfileRepository,
	schemeRepo repositories.SchemeRepository,
	recRepo repositories.RecommendationRepository,
	eligibility *EligibilityService,
) *RecommendationService {
	return &RecommendationService{
		profileRepo: profileRepo,
		schemeRepo:  schemeRepo,
		recRepo:     recRepo,
		eligibility: eligibility,
	}
}

// Generate scores every active scheme against the citizen's profile and
// replaces the stored recommendation set with the new ranking. At most
// MaxRecommendations rows are kept and zero-score schemes are never stored.
func (s *RecommendationService) Generate(ctx context.Context, userID string) ([]*RecommendationWithScheme, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	schemes, err := s.schemeRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	type scoredScheme struct {
		scheme *models.Scheme
		result EligibilityResult
	}

	scored := make([]scoredScheme, 0, len(schemes))
	for _, scheme := range schemes {
		scored = append(scored, scoredScheme{
			scheme: scheme,
			result: s.eligibility.CheckEligibility(profile, scheme),
		})
	}

	// Stable sort keeps catalog order for equal scores
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].result.Score > scored[j].result.Score
	})

	now := time.Now()
	recs := make([]*models.Recommendation, 0, MaxRecommendations)
	enriched := make([]*RecommendationWithScheme, 0, MaxRecommendations)
	for _, sc := range scored {
		if len(recs) >= MaxRecommendations || sc.result.Score <= 0 {
			break
		}
		reason := reasonPartiallyEligible
		status := domain.StatusPartiallyEligible
		if sc.result.Eligible {
			reason = reasonEligible
			status = domain.StatusEligible
		}
		rec := &models.Recommendation{
			UserID:   userID,
			SchemeID: sc.scheme.ID,
			Score:    sc.result.Score,
			Reason:   reason,
		}
		recs = append(recs, rec)
		enriched = append(enriched, &RecommendationWithScheme{
			UserID:             userID,
			Scheme:             sc.scheme,
			Score:              sc.result.Score,
			Reason:             reason,
			EligibilityStatus:  status,
			EligibilityDetails: sc.result,
			GeneratedAt:        now,
		})
	}

	if err := s.recRepo.ReplaceForUser(ctx, userID, recs); err != nil {
		return nil, err
	}
	for i, rec := range recs {
		enriched[i].ID = rec.ID
		enriched[i].GeneratedAt = rec.CreatedAt
	}

	log.Printf("✅ Generated %d recommendations for user %s", len(recs), userID)
	return enriched, nil
}

// GetForUser returns the stored recommendation set. Stored scores and reasons
// are authoritative; eligibility status and details are recomputed against the
// current profile. Recommendations whose scheme is gone or deactivated are
// silently dropped.
func (s *RecommendationService) GetForUser(ctx context.Context, userID string) ([]*RecommendationWithScheme, error) {
	recs, err := s.recRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var profile *models.CitizenProfile
	profile, err = s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = nil
	}

	results := make([]*RecommendationWithScheme, 0, len(recs))
	for _, rec := range recs {
		scheme, err := s.schemeRepo.GetByID(ctx, rec.SchemeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		var details EligibilityResult
		if profile != nil {
			details = s.eligibility.CheckEligibility(profile, scheme)
		} else {
			details = EligibilityResult{Reasons: []string{}, MissingCriteria: []string{}}
		}
		status := domain.StatusPartiallyEligible
		if details.Eligible {
			status = domain.StatusEligible
		}

		results = append(results, &RecommendationWithScheme{
			ID:                 rec.ID,
			UserID:             rec.UserID,
			Scheme:             scheme,
			Score:              rec.Score,
			Reason:             rec.Reason,
			EligibilityStatus:  status,
			EligibilityDetails: details,
			GeneratedAt:        rec.CreatedAt,
		})
	}
	return results, nil
}

// Refresh recomputes the recommendation set from scratch. Running it twice
// against unchanged data yields the same ranking.
func (s *RecommendationService) Refresh(ctx context.Context, userID string) ([]*RecommendationWithScheme, error) {
	results, err := s.Generate(ctx, userID)
	if err != nil {
		return nil, err
	}
	log.Printf("🔄 Refreshed recommendations for user %s", userID)
	return results, nil
}

// GetByCategory filters the stored set down to schemes in the given category
func (s *RecommendationService) GetByCategory(ctx context.Context, userID, category string) ([]*RecommendationWithScheme, error) {
	all, err := s.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	filtered := make([]*RecommendationWithScheme, 0, len(all))
	for _, rec := range all {
		if strings.EqualFold(rec.Scheme.Category, category) {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}
