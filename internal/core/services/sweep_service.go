package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"sevasetu/internal/adapters/persistence/repositories"
)

// SweepService periodically regenerates every citizen's recommendation set so
// catalog changes reach users who have not touched their profile. It also
// purges expired refresh tokens.
type SweepService struct {
	profileRepo     repositories.ProfileRepository
	recommendations *RecommendationService
	auth            *AuthService
	schedule        string
	cron            *cron.Cron
}

// NewSweepService creates the nightly sweep. Schedule is standard cron syntax.
func NewSweepService(profileRepo repositories.ProfileRepository, recommendations *RecommendationService, auth *AuthService, schedule string) *SweepService {
	return &SweepService{
		profileRepo:     profileRepo,
		recommendations: recommendations,
		auth:            auth,
		schedule:        schedule,
		cron:            cron.New(),
	}
}

// Start registers the sweep job and begins the scheduler
func (s *SweepService) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runSweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("⏰ Recommendation sweep scheduled: %s", s.schedule)
	return nil
}

// Stop halts the scheduler, waiting for a running sweep to finish
func (s *SweepService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunOnce executes a single sweep pass. Failures for individual users are
// logged and skipped so one broken profile cannot stall the rest.
func (s *SweepService) RunOnce(ctx context.Context) (int, error) {
	userIDs, err := s.profileRepo.ListUserIDs(ctx)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, userID := range userIDs {
		if _, err := s.recommendations.Generate(ctx, userID); err != nil {
			log.Printf("⚠️  Sweep: failed to refresh recommendations for user %s: %v", userID, err)
			continue
		}
		refreshed++
	}

	if err := s.auth.CleanupExpiredTokens(ctx); err != nil {
		log.Printf("⚠️  Sweep: failed to purge expired refresh tokens: %v", err)
	}

	return refreshed, nil
}

func (s *SweepService) runSweep() {
	ctx := context.Background()
	refreshed, err := s.RunOnce(ctx)
	if err != nil {
		log.Printf("❌ Recommendation sweep failed: %v", err)
		return
	}
	log.Printf("✅ Recommendation sweep refreshed %d users", refreshed)
}
