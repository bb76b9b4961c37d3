package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"gorm.io/gorm"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/adapters/persistence/repositories"
	"sevasetu/internal/core/domain"
)

var (
	aadhaarPattern = regexp.MustCompile(`^\d{12}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// CreateProfileInput carries the fields for a new citizen profile
type CreateProfileInput struct {
	FullName          string
	AadhaarNumber     string
	DateOfBirth       *string
	Gender            string
	State             string
	District          string
	Pincode           string
	AnnualIncome      *int
	Category          *string
	Occupation        *string
	Education         string
	FamilySize        *int
	HasDisability     bool
	DisabilityType    string
	BankAccount       string
	AdditionalDetails models.JSONMap
}

// UpdateProfileInput carries a partial profile update; nil fields are left
// untouched
type UpdateProfileInput struct {
	FullName       *string
	DateOfBirth    *string
	Gender         *string
	State          *string
	District       *string
	Pincode        *string
	AnnualIncome   *int
	Category       *string
	Occupation     *string
	Education      *string
	FamilySize     *int
	HasDisability  *bool
	DisabilityType *string
	BankAccount    *string
}

// ProfileService manages citizen profiles and keeps the recommendation set in
// step with profile changes
type ProfileService struct {
	profileRepo     repositories.ProfileRepository
	userRepo        repositories.UserRepository
	recommendations *RecommendationService
}

// NewProfileService creates a profile service
func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository, recommendations *RecommendationService) *ProfileService {
	return &ProfileService{
		profileRepo:     profileRepo,
		userRepo:        userRepo,
		recommendations: recommendations,
	}
}

// Get returns the citizen profile for the user
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.CitizenProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Create stores a new profile and generates the first recommendation set.
// Recommendation generation is best effort: a failure there never fails the
// profile write.
func (s *ProfileService) Create(ctx context.Context, userID string, input CreateProfileInput) (*models.CitizenProfile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	if _, err := s.profileRepo.GetByUserID(ctx, userID); err == nil {
		return nil, domain.ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile := &models.CitizenProfile{
		UserID:            userID,
		FullName:          input.FullName,
		AadhaarNumber:     input.AadhaarNumber,
		DateOfBirth:       input.DateOfBirth,
		Gender:            input.Gender,
		State:             input.State,
		District:          input.District,
		Pincode:           input.Pincode,
		AnnualIncome:      input.AnnualIncome,
		Category:          input.Category,
		Occupation:        input.Occupation,
		Education:         input.Education,
		FamilySize:        input.FamilySize,
		HasDisability:     input.HasDisability,
		DisabilityType:    input.DisabilityType,
		BankAccount:       input.BankAccount,
		AdditionalDetails: input.AdditionalDetails,
	}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	if _, err := s.recommendations.Generate(ctx, userID); err != nil {
		log.Printf("⚠️  Failed to generate recommendations for user %s: %v", userID, err)
	}

	return profile, nil
}

// Update applies a partial update and refreshes the recommendation set.
// Like Create, the refresh is best effort.
func (s *ProfileService) Update(ctx context.Context, userID string, input UpdateProfileInput) (*models.CitizenProfile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Category != nil && *input.Category != "" && !domain.IsValidCategory(*input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, *input.Category)
	}
	if input.DateOfBirth != nil && *input.DateOfBirth != "" {
		if err := validateDateOfBirth(*input.DateOfBirth); err != nil {
			return nil, err
		}
	}
	if input.Pincode != nil && *input.Pincode != "" && !pincodePattern.MatchString(*input.Pincode) {
		return nil, fmt.Errorf("%w: pincode must be 6 digits", domain.ErrInvalidInput)
	}

	if input.FullName != nil {
		profile.FullName = *input.FullName
	}
	if input.DateOfBirth != nil {
		profile.DateOfBirth = input.DateOfBirth
	}
	if input.Gender != nil {
		profile.Gender = *input.Gender
	}
	if input.State != nil {
		profile.State = *input.State
	}
	if input.District != nil {
		profile.District = *input.District
	}
	if input.Pincode != nil {
		profile.Pincode = *input.Pincode
	}
	if input.AnnualIncome != nil {
		profile.AnnualIncome = input.AnnualIncome
	}
	if input.Category != nil {
		profile.Category = input.Category
	}
	if input.Occupation != nil {
		profile.Occupation = input.Occupation
	}
	if input.Education != nil {
		profile.Education = *input.Education
	}
	if input.FamilySize != nil {
		profile.FamilySize = input.FamilySize
	}
	if input.HasDisability != nil {
		profile.HasDisability = *input.HasDisability
	}
	if input.DisabilityType != nil {
		profile.DisabilityType = *input.DisabilityType
	}
	if input.BankAccount != nil {
		profile.BankAccount = *input.BankAccount
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	if _, err := s.recommendations.Refresh(ctx, userID); err != nil {
		log.Printf("⚠️  Failed to refresh recommendations for user %s: %v", userID, err)
	}

	return profile, nil
}

// UpdateLanguage changes the user's preferred language
func (s *ProfileService) UpdateLanguage(ctx context.Context, userID, language string) (*models.User, error) {
	if !domain.IsSupportedLanguage(language) {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, language)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.PreferredLanguage = language
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func validateProfileInput(input CreateProfileInput) error {
	if input.FullName == "" {
		return fmt.Errorf("%w: full name is required", domain.ErrInvalidInput)
	}
	if input.State == "" {
		return fmt.Errorf("%w: state is required", domain.ErrInvalidInput)
	}
	if input.AadhaarNumber != "" && !aadhaarPattern.MatchString(input.AadhaarNumber) {
		return fmt.Errorf("%w: aadhaar number must be 12 digits", domain.ErrInvalidInput)
	}
	if input.Pincode != "" && !pincodePattern.MatchString(input.Pincode) {
		return fmt.Errorf("%w: pincode must be 6 digits", domain.ErrInvalidInput)
	}
	if input.DateOfBirth != nil && *input.DateOfBirth != "" {
		if err := validateDateOfBirth(*input.DateOfBirth); err != nil {
			return err
		}
	}
	if input.Category != nil && *input.Category != "" && !domain.IsValidCategory(*input.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, *input.Category)
	}
	if input.AnnualIncome != nil && *input.AnnualIncome < 0 {
		return fmt.Errorf("%w: annual income cannot be negative", domain.ErrInvalidInput)
	}
	return nil
}

func validateDateOfBirth(dob string) error {
	if !datePattern.MatchString(dob) {
		return fmt.Errorf("%w: date of birth must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	parsed, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return fmt.Errorf("%w: invalid date of birth", domain.ErrInvalidInput)
	}
	if parsed.After(time.Now()) {
		return fmt.Errorf("%w: date of birth cannot be in the future", domain.ErrInvalidInput)
	}
	return nil
}
