package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/adapters/persistence/repositories"
	"sevasetu/internal/core/domain"
)

// CreateApplicationInput carries the fields for filing a scheme application
type CreateApplicationInput struct {
	SchemeID  string
	Documents []string
	Amount    *float64
	Remarks   string
}

// ApplicationService handles scheme application filing and status tracking
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	schemeRepo      repositories.SchemeRepository
	notifications   *NotificationService
}

// NewApplicationService creates an application service
func NewApplicationService(applicationRepo repositories.ApplicationRepository, schemeRepo repositories.SchemeRepository, notifications *NotificationService) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		schemeRepo:      schemeRepo,
		notifications:   notifications,
	}
}

// Create files a new application against an active scheme
func (s *ApplicationService) Create(ctx context.Context, userID string, input CreateApplicationInput) (*models.Application, error) {
	if _, err := s.schemeRepo.GetByID(ctx, input.SchemeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSchemeNotFound
		}
		return nil, err
	}

	app := &models.Application{
		UserID:    userID,
		SchemeID:  input.SchemeID,
		Status:    domain.ApplicationSubmitted,
		Documents: models.StringList(input.Documents),
		Amount:    input.Amount,
		Remarks:   input.Remarks,
		StatusHistory: models.JSONMap{
			domain.ApplicationSubmitted: statusHistoryEntry(""),
		},
	}
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.NotifyApplicationSubmitted(ctx, app)
	}
	return app, nil
}

// GetByID returns one application. Ownership is enforced: a user can only
// read their own applications.
func (s *ApplicationService) GetByID(ctx context.Context, userID, id string) (*models.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	if app.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return app, nil
}

// GetForUser returns all applications filed by the user, newest first
func (s *ApplicationService) GetForUser(ctx context.Context, userID string) ([]*models.Application, error) {
	return s.applicationRepo.GetByUserID(ctx, userID)
}

// UpdateStatus transitions an application to a new status and appends to the
// status history
func (s *ApplicationService) UpdateStatus(ctx context.Context, userID, id, status, remarks string) (*models.Application, error) {
	if !domain.IsValidApplicationStatus(status) {
		return nil, fmt.Errorf("%w: unknown application status %q", domain.ErrInvalidInput, status)
	}

	app, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	previous := app.Status
	app.Status = status
	if remarks != "" {
		app.Remarks = remarks
	}
	if app.StatusHistory == nil {
		app.StatusHistory = models.JSONMap{}
	}
	app.StatusHistory[status] = statusHistoryEntry(remarks)

	if err := s.applicationRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	if s.notifications != nil && previous != status {
		s.notifications.NotifyApplicationStatusChanged(ctx, app, previous)
	}
	return app, nil
}

func statusHistoryEntry(remarks string) map[string]interface{} {
	entry := map[string]interface{}{
		"at": time.Now().Format(time.RFC3339),
	}
	if remarks != "" {
		entry["remarks"] = remarks
	}
	return entry
}
