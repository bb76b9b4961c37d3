package services

import (
	"strings"
	"time"

	"sevasetu/internal/adapters/persistence/models"
)

// Criterion weights. The sum of all six is 100.
const (
	ScoreCategoryMatch   = 20
	ScoreOccupationMatch = 20
	ScoreIncomeCeiling   = 15
	ScoreMinAge          = 10
	ScoreMaxAge          = 10
	ScoreDisability      = 25
)

// DefaultEligibleThreshold is the score at which a citizen counts as fully
// eligible. Anything positive below it is a partial match.
const DefaultEligibleThreshold = 50

// EligibilityResult is the outcome of matching one profile against one scheme
type EligibilityResult struct {
	Eligible        bool     `json:"eligible"`
	Score           float64  `json:"score"`
	Reasons         []string `json:"reasons"`
	MissingCriteria []string `json:"missingCriteria"`
}

// EligibilityService scores a citizen profile against a scheme's criteria.
// It is a pure rule engine: no I/O, no stored state beyond the threshold.
type EligibilityService struct {
	threshold float64
}

// NewEligibilityService creates an eligibility service with the given
// eligible-score threshold
func NewEligibilityService(threshold float64) *EligibilityService {
	return &EligibilityService{threshold: threshold}
}

// CheckEligibility scores profile against scheme. Each criterion counts only
// when the scheme defines it and the profile carries the data to judge it;
// missing data on either side is neutral. Never fails: malformed optional
// fields simply leave their criterion unscored.
func (s *EligibilityService) CheckEligibility(profile *models.CitizenProfile, scheme *models.Scheme) EligibilityResult {
	result := EligibilityResult{
		Reasons:         []string{},
		MissingCriteria: []string{},
	}

	// Category
	if len(scheme.TargetCategories) > 0 && profile.Category != nil {
		if scheme.TargetCategories.Contains(*profile.Category) {
			result.Score += ScoreCategoryMatch
			result.Reasons = append(result.Reasons, "Category eligible")
		} else {
			result.MissingCriteria = append(result.MissingCriteria, "Category does not match scheme target groups")
		}
	}

	// Occupation
	if len(scheme.TargetOccupations) > 0 && profile.Occupation != nil {
		if scheme.TargetOccupations.Contains(*profile.Occupation) {
			result.Score += ScoreOccupationMatch
			result.Reasons = append(result.Reasons, "Occupation matches criteria")
		} else {
			result.MissingCriteria = append(result.MissingCriteria, "Occupation does not match scheme target occupations")
		}
	}

	// Income ceiling
	if scheme.MaxIncome != nil && profile.AnnualIncome != nil {
		if *profile.AnnualIncome <= *scheme.MaxIncome {
			result.Score += ScoreIncomeCeiling
			result.Reasons = append(result.Reasons, "Income matches criteria")
		} else {
			result.MissingCriteria = append(result.MissingCriteria, "Annual income exceeds the scheme limit")
		}
	}

	// Age bounds
	age := ageFromDateOfBirth(profile.DateOfBirth)
	if scheme.MinAge != nil && age != nil {
		if *age >= *scheme.MinAge {
			result.Score += ScoreMinAge
			result.Reasons = append(result.Reasons, "Meets minimum age requirement")
		} else {
			result.MissingCriteria = append(result.MissingCriteria, "Below the minimum age for this scheme")
		}
	}
	if scheme.MaxAge != nil && age != nil {
		if *age <= *scheme.MaxAge {
			result.Score += ScoreMaxAge
			result.Reasons = append(result.Reasons, "Meets maximum age requirement")
		} else {
			result.MissingCriteria = append(result.MissingCriteria, "Above the maximum age for this scheme")
		}
	}

	// Disability relevance
	if strings.Contains(strings.ToLower(scheme.Description), "disability") {
		if profile.HasDisability {
			result.Score += ScoreDisability
			result.Reasons = append(result.Reasons, "Scheme offers disability support")
		} else {
			result.MissingCriteria = append(result.MissingCriteria, "Scheme targets persons with disabilities")
		}
	}

	result.Eligible = result.Score >= s.threshold
	return result
}

// ageFromDateOfBirth derives age as a calendar-year difference, matching the
// seeded catalog's coarse age bounds. Returns nil when the date is absent or
// unparseable.
func ageFromDateOfBirth(dob *string) *int {
	if dob == nil || *dob == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02", *dob)
	if err != nil {
		return nil
	}
	age := time.Now().Year() - parsed.Year()
	if age < 0 {
		return nil
	}
	return &age
}
