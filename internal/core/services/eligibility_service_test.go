package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sevasetu/internal/adapters/persistence/models"
)

func dobForAge(age int) *string {
	dob := fmt.Sprintf("%04d-06-15", time.Now().Year()-age)
	return &dob
}

func TestCheckEligibility_FullMatch(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	profile := &models.CitizenProfile{
		FullName:     "Asha Kumari",
		State:        "Bihar",
		Category:     strp("SC"),
		Occupation:   strp("Farmer"),
		AnnualIncome: intp(200000),
		DateOfBirth:  dobForAge(30),
	}
	scheme := &models.Scheme{
		Description:       "Income support for small farmers.",
		TargetCategories:  models.StringList{"SC", "ST"},
		TargetOccupations: models.StringList{"Farmer"},
		MaxIncome:         intp(250000),
		MinAge:            intp(18),
	}

	result := svc.CheckEligibility(profile, scheme)

	assert.Equal(t, float64(65), result.Score)
	assert.True(t, result.Eligible)
	assert.Empty(t, result.MissingCriteria)
	assert.Equal(t, []string{
		"Category eligible",
		"Occupation matches criteria",
		"Income matches criteria",
		"Meets minimum age requirement",
	}, result.Reasons)
}

func TestCheckEligibility_NoMatch(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	profile := &models.CitizenProfile{
		Category:     strp("General"),
		Occupation:   strp("Engineer"),
		AnnualIncome: intp(900000),
		DateOfBirth:  dobForAge(16),
	}
	scheme := &models.Scheme{
		Description:       "Income support for small farmers.",
		TargetCategories:  models.StringList{"SC", "ST"},
		TargetOccupations: models.StringList{"Farmer"},
		MaxIncome:         intp(250000),
		MinAge:            intp(18),
	}

	result := svc.CheckEligibility(profile, scheme)

	assert.Equal(t, float64(0), result.Score)
	assert.False(t, result.Eligible)
	assert.Empty(t, result.Reasons)
	assert.Len(t, result.MissingCriteria, 4)
}

func TestCheckEligibility_MissingDataIsNeutral(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	// Profile carries no category, occupation, income or birth date. None of
	// the scheme's criteria can be judged, so nothing is scored and nothing
	// is reported missing.
	profile := &models.CitizenProfile{FullName: "Ravi", State: "Kerala"}
	scheme := &models.Scheme{
		Description:       "Housing subsidy.",
		TargetCategories:  models.StringList{"SC"},
		TargetOccupations: models.StringList{"Farmer"},
		MaxIncome:         intp(250000),
		MinAge:            intp(18),
		MaxAge:            intp(60),
	}

	result := svc.CheckEligibility(profile, scheme)

	assert.Equal(t, float64(0), result.Score)
	assert.Empty(t, result.Reasons)
	assert.Empty(t, result.MissingCriteria)
}

func TestCheckEligibility_UnrestrictedSchemeIsNeutral(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	profile := &models.CitizenProfile{
		Category:     strp("SC"),
		Occupation:   strp("Farmer"),
		AnnualIncome: intp(100000),
		DateOfBirth:  dobForAge(40),
	}
	// Scheme defines no criteria at all.
	scheme := &models.Scheme{Description: "Universal banking access."}

	result := svc.CheckEligibility(profile, scheme)

	assert.Equal(t, float64(0), result.Score)
	assert.False(t, result.Eligible)
}

func TestCheckEligibility_CategoryMatchIsCaseInsensitive(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	profile := &models.CitizenProfile{Category: strp("sc")}
	scheme := &models.Scheme{TargetCategories: models.StringList{"SC"}}

	result := svc.CheckEligibility(profile, scheme)

	assert.Equal(t, float64(ScoreCategoryMatch), result.Score)
}

func TestCheckEligibility_DisabilityKeyword(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	scheme := &models.Scheme{
		Description: "Aids and appliances for persons with Disability in rural areas.",
	}

	withDisability := svc.CheckEligibility(&models.CitizenProfile{HasDisability: true}, scheme)
	assert.Equal(t, float64(ScoreDisability), withDisability.Score)
	assert.Contains(t, withDisability.Reasons, "Scheme offers disability support")

	withoutDisability := svc.CheckEligibility(&models.CitizenProfile{}, scheme)
	assert.Equal(t, float64(0), withoutDisability.Score)
	assert.Contains(t, withoutDisability.MissingCriteria, "Scheme targets persons with disabilities")
}

func TestCheckEligibility_AgeBounds(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	scheme := &models.Scheme{MinAge: intp(18), MaxAge: intp(40)}

	inRange := svc.CheckEligibility(&models.CitizenProfile{DateOfBirth: dobForAge(30)}, scheme)
	assert.Equal(t, float64(ScoreMinAge+ScoreMaxAge), inRange.Score)

	tooOld := svc.CheckEligibility(&models.CitizenProfile{DateOfBirth: dobForAge(65)}, scheme)
	assert.Equal(t, float64(ScoreMinAge), tooOld.Score)
	assert.Contains(t, tooOld.MissingCriteria, "Above the maximum age for this scheme")

	tooYoung := svc.CheckEligibility(&models.CitizenProfile{DateOfBirth: dobForAge(10)}, scheme)
	assert.Equal(t, float64(ScoreMaxAge), tooYoung.Score)
	assert.Contains(t, tooYoung.MissingCriteria, "Below the minimum age for this scheme")
}

func TestCheckEligibility_MalformedBirthDateSkipsAge(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	profile := &models.CitizenProfile{DateOfBirth: strp("not-a-date")}
	scheme := &models.Scheme{MinAge: intp(18)}

	result := svc.CheckEligibility(profile, scheme)

	assert.Equal(t, float64(0), result.Score)
	assert.Empty(t, result.MissingCriteria)
}

func TestCheckEligibility_IncomeBoundaryInclusive(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	scheme := &models.Scheme{MaxIncome: intp(250000)}

	atLimit := svc.CheckEligibility(&models.CitizenProfile{AnnualIncome: intp(250000)}, scheme)
	assert.Equal(t, float64(ScoreIncomeCeiling), atLimit.Score)

	overLimit := svc.CheckEligibility(&models.CitizenProfile{AnnualIncome: intp(250001)}, scheme)
	assert.Equal(t, float64(0), overLimit.Score)
	assert.Contains(t, overLimit.MissingCriteria, "Annual income exceeds the scheme limit")
}

func TestCheckEligibility_ThresholdBoundary(t *testing.T) {
	profile := &models.CitizenProfile{
		Category:     strp("SC"),
		AnnualIncome: intp(100000),
		DateOfBirth:  dobForAge(30),
	}
	// category 20 + income 15 + min age 10 + max age 10 = 55
	scheme := &models.Scheme{
		TargetCategories: models.StringList{"SC"},
		MaxIncome:        intp(250000),
		MinAge:           intp(18),
		MaxAge:           intp(60),
	}

	atThreshold := NewEligibilityService(55).CheckEligibility(profile, scheme)
	require.Equal(t, float64(55), atThreshold.Score)
	assert.True(t, atThreshold.Eligible)

	aboveThreshold := NewEligibilityService(56).CheckEligibility(profile, scheme)
	assert.False(t, aboveThreshold.Eligible)
}

func TestCheckEligibility_Deterministic(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	profile := &models.CitizenProfile{
		Category:      strp("OBC"),
		Occupation:    strp("Weaver"),
		AnnualIncome:  intp(150000),
		DateOfBirth:   dobForAge(45),
		HasDisability: true,
	}
	scheme := &models.Scheme{
		Description:       "Pension with disability support.",
		TargetCategories:  models.StringList{"OBC", "SC"},
		TargetOccupations: models.StringList{"Weaver", "Potter"},
		MaxIncome:         intp(200000),
		MinAge:            intp(18),
		MaxAge:            intp(60),
	}

	first := svc.CheckEligibility(profile, scheme)
	second := svc.CheckEligibility(profile, scheme)

	assert.Equal(t, first, second)
	assert.Equal(t, float64(100), first.Score)
}

func TestCheckEligibility_ScoreMonotonicUnderProfileGrowth(t *testing.T) {
	svc := NewEligibilityService(DefaultEligibleThreshold)

	scheme := &models.Scheme{
		Description:       "Assistive devices and disability support for artisans.",
		TargetCategories:  models.StringList{"OBC"},
		TargetOccupations: models.StringList{"Weaver"},
		MaxIncome:         intp(200000),
		MinAge:            intp(18),
		MaxAge:            intp(60),
	}

	profile := &models.CitizenProfile{}
	steps := []struct {
		name  string
		apply func(p *models.CitizenProfile)
	}{
		{"category", func(p *models.CitizenProfile) { p.Category = strp("OBC") }},
		{"occupation", func(p *models.CitizenProfile) { p.Occupation = strp("Weaver") }},
		{"income", func(p *models.CitizenProfile) { p.AnnualIncome = intp(150000) }},
		{"date of birth", func(p *models.CitizenProfile) { p.DateOfBirth = dobForAge(45) }},
		{"disability", func(p *models.CitizenProfile) { p.HasDisability = true }},
	}

	// Filling in one satisfied criterion at a time never lowers the score
	previous := svc.CheckEligibility(profile, scheme).Score
	for _, step := range steps {
		step.apply(profile)
		current := svc.CheckEligibility(profile, scheme).Score
		assert.GreaterOrEqual(t, current, previous, "score dropped after adding %s", step.name)
		previous = current
	}
	assert.Equal(t, float64(100), previous)
}
