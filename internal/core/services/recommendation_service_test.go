package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/core/domain"
)

func newRecommendationFixture(t *testing.T, schemes ...*models.Scheme) (*RecommendationService, *fakeProfileRepo, *fakeSchemeRepo, *fakeRecommendationRepo) {
	t.Helper()
	profileRepo := newFakeProfileRepo()
	schemeRepo := newFakeSchemeRepo(schemes...)
	recRepo := newFakeRecommendationRepo()
	svc := NewRecommendationService(profileRepo, schemeRepo, recRepo, NewEligibilityService(DefaultEligibleThreshold))
	return svc, profileRepo, schemeRepo, recRepo
}

func farmerProfile(userID string) *models.CitizenProfile {
	return &models.CitizenProfile{
		UserID:       userID,
		FullName:     "Asha Kumari",
		State:        "Bihar",
		Category:     strp("SC"),
		Occupation:   strp("Farmer"),
		AnnualIncome: intp(150000),
		DateOfBirth:  dobForAge(35),
	}
}

func farmScheme(name string) *models.Scheme {
	return &models.Scheme{
		Name:              name,
		Description:       "Income support for farmers.",
		Category:          "Agriculture",
		IsActive:          true,
		TargetCategories:  models.StringList{"SC", "ST"},
		TargetOccupations: models.StringList{"Farmer"},
		MaxIncome:         intp(250000),
		MinAge:            intp(18),
	}
}

func TestGenerate_ProfileMissing(t *testing.T) {
	svc, _, _, _ := newRecommendationFixture(t, farmScheme("PM-KISAN"))

	_, err := svc.Generate(context.Background(), "no-such-user")

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestGenerate_RanksAndPersists(t *testing.T) {
	strong := farmScheme("Strong match")
	weak := &models.Scheme{
		Name:             "Weak match",
		Description:      "Scholarships for students.",
		Category:         "Education",
		IsActive:         true,
		TargetCategories: models.StringList{"SC"},
	}
	none := &models.Scheme{
		Name:              "No match",
		Description:       "Pensions for retired soldiers.",
		Category:          "Defence",
		IsActive:          true,
		TargetOccupations: models.StringList{"Soldier"},
	}
	svc, profileRepo, _, recRepo := newRecommendationFixture(t, strong, weak, none)
	require.NoError(t, profileRepo.Create(context.Background(), farmerProfile("u1")))

	results, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	// Zero-score scheme is excluded, the rest are ranked descending
	require.Len(t, results, 2)
	assert.Equal(t, "Strong match", results[0].Scheme.Name)
	assert.Equal(t, float64(65), results[0].Score)
	assert.Equal(t, domain.StatusEligible, results[0].EligibilityStatus)
	assert.Equal(t, "You are eligible for this scheme.", results[0].Reason)
	assert.False(t, results[0].GeneratedAt.IsZero())

	assert.Equal(t, "Weak match", results[1].Scheme.Name)
	assert.Equal(t, float64(20), results[1].Score)
	assert.Equal(t, domain.StatusPartiallyEligible, results[1].EligibilityStatus)
	assert.Equal(t, "You are partially eligible for this scheme.", results[1].Reason)

	// Persisted set matches the returned ranking
	stored, err := recRepo.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, strong.ID, stored[0].SchemeID)
	assert.NotEmpty(t, stored[0].ID)
}

func TestGenerate_CapsAtMaxRecommendations(t *testing.T) {
	var schemes []*models.Scheme
	for i := 0; i < MaxRecommendations+5; i++ {
		schemes = append(schemes, farmScheme(fmt.Sprintf("Scheme %02d", i)))
	}
	svc, profileRepo, _, recRepo := newRecommendationFixture(t, schemes...)
	require.NoError(t, profileRepo.Create(context.Background(), farmerProfile("u1")))

	results, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	assert.Len(t, results, MaxRecommendations)
	stored, _ := recRepo.GetByUserID(context.Background(), "u1")
	assert.Len(t, stored, MaxRecommendations)
}

func TestGenerate_EqualScoresKeepCatalogOrder(t *testing.T) {
	first := farmScheme("Catalog first")
	second := farmScheme("Catalog second")
	svc, profileRepo, _, _ := newRecommendationFixture(t, first, second)
	require.NoError(t, profileRepo.Create(context.Background(), farmerProfile("u1")))

	results, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Catalog first", results[0].Scheme.Name)
	assert.Equal(t, "Catalog second", results[1].Scheme.Name)
}

func TestGenerate_ReplacesPreviousSet(t *testing.T) {
	scheme := farmScheme("PM-KISAN")
	svc, profileRepo, _, recRepo := newRecommendationFixture(t, scheme)
	require.NoError(t, profileRepo.Create(context.Background(), farmerProfile("u1")))

	_, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	stored, _ := recRepo.GetByUserID(context.Background(), "u1")
	assert.Len(t, stored, 1)
	assert.Equal(t, 2, recRepo.replaces)
}

func TestRefresh_IdempotentRanking(t *testing.T) {
	svc, profileRepo, _, _ := newRecommendationFixture(t, farmScheme("A"), farmScheme("B"))
	require.NoError(t, profileRepo.Create(context.Background(), farmerProfile("u1")))

	first, err := svc.Refresh(context.Background(), "u1")
	require.NoError(t, err)
	second, err := svc.Refresh(context.Background(), "u1")
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Scheme.ID, second[i].Scheme.ID)
		assert.Equal(t, first[i].Score, second[i].Score)
	}
}

func TestGetForUser_StoredScoreAuthoritativeStatusRefreshed(t *testing.T) {
	scheme := farmScheme("PM-KISAN")
	svc, profileRepo, _, _ := newRecommendationFixture(t, scheme)
	profile := farmerProfile("u1")
	require.NoError(t, profileRepo.Create(context.Background(), profile))

	_, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	// Profile changes after generation: the stored score must survive, the
	// status and details must reflect the current profile.
	profile.Occupation = strp("Teacher")
	profile.Category = strp("General")
	require.NoError(t, profileRepo.Update(context.Background(), profile))

	results, err := svc.GetForUser(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, float64(65), results[0].Score)
	assert.Equal(t, domain.StatusPartiallyEligible, results[0].EligibilityStatus)
	// Live evaluation now only matches income and age: 15 + 10
	assert.Equal(t, float64(25), results[0].EligibilityDetails.Score)
}

func TestGetForUser_DropsDeactivatedSchemes(t *testing.T) {
	kept := farmScheme("Kept")
	dropped := farmScheme("Dropped")
	svc, profileRepo, schemeRepo, _ := newRecommendationFixture(t, kept, dropped)
	require.NoError(t, profileRepo.Create(context.Background(), farmerProfile("u1")))

	_, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	schemeRepo.deactivate(dropped.ID)

	results, err := svc.GetForUser(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "Kept", results[0].Scheme.Name)
}

func TestGetForUser_EmptyWithoutGeneration(t *testing.T) {
	svc, profileRepo, _, _ := newRecommendationFixture(t, farmScheme("PM-KISAN"))
	require.NoError(t, profileRepo.Create(context.Background(), farmerProfile("u1")))

	results, err := svc.GetForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetByCategory_FiltersCaseInsensitive(t *testing.T) {
	agriculture := farmScheme("PM-KISAN")
	education := &models.Scheme{
		Name:             "NSP",
		Description:      "Scholarships.",
		Category:         "Education",
		IsActive:         true,
		TargetCategories: models.StringList{"SC"},
	}
	svc, profileRepo, _, _ := newRecommendationFixture(t, agriculture, education)
	require.NoError(t, profileRepo.Create(context.Background(), farmerProfile("u1")))

	_, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	results, err := svc.GetByCategory(context.Background(), "u1", "agriculture")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "PM-KISAN", results[0].Scheme.Name)
}
