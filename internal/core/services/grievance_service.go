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

// CreateGrievanceInput carries the fields for filing a grievance
type CreateGrievanceInput struct {
	ApplicationID *string
	Title         string
	Description   string
	Category      string
	Priority      string
}

// GrievanceService handles citizen grievance filing and resolution
type GrievanceService struct {
	grievanceRepo repositories.GrievanceRepository
	notifications *NotificationService
}

// NewGrievanceService creates a grievance service
func NewGrievanceService(grievanceRepo repositories.GrievanceRepository, notifications *NotificationService) *GrievanceService {
	return &GrievanceService{
		grievanceRepo: grievanceRepo,
		notifications: notifications,
	}
}

// Create files a new grievance
func (s *GrievanceService) Create(ctx context.Context, userID string, input CreateGrievanceInput) (*models.Grievance, error) {
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput)
	}

	priority := input.Priority
	switch priority {
	case "":
		priority = domain.PriorityMedium
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
	default:
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, priority)
	}

	grievance := &models.Grievance{
		UserID:        userID,
		ApplicationID: input.ApplicationID,
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Priority:      priority,
		Status:        domain.GrievanceOpen,
	}
	if err := s.grievanceRepo.Create(ctx, grievance); err != nil {
		return nil, err
	}

	if s.notifications != nil {
		s.notifications.NotifyGrievanceFiled(ctx, grievance)
	}
	return grievance, nil
}

// GetByID returns one grievance, enforcing ownership
func (s *GrievanceService) GetByID(ctx context.Context, userID, id string) (*models.Grievance, error) {
	grievance, err := s.grievanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGrievanceNotFound
		}
		return nil, err
	}
	if grievance.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return grievance, nil
}

// GetForUser returns all grievances filed by the user, newest first
func (s *GrievanceService) GetForUser(ctx context.Context, userID string) ([]*models.Grievance, error) {
	return s.grievanceRepo.GetByUserID(ctx, userID)
}

// UpdateStatus moves a grievance through its lifecycle. Resolving stamps the
// resolution time.
func (s *GrievanceService) UpdateStatus(ctx context.Context, userID, id, status, resolution string) (*models.Grievance, error) {
	switch status {
	case domain.GrievanceOpen, domain.GrievanceInProgress, domain.GrievanceResolved, domain.GrievanceClosed:
	default:
		return nil, fmt.Errorf("%w: unknown grievance status %q", domain.ErrInvalidInput, status)
	}

	grievance, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	grievance.Status = status
	if resolution != "" {
		grievance.Resolution = resolution
	}
	if status == domain.GrievanceResolved && grievance.ResolvedAt == nil {
		now := time.Now()
		grievance.ResolvedAt = &now
	}

	if err := s.grievanceRepo.Update(ctx, grievance); err != nil {
		return nil, err
	}

	if s.notifications != nil && status == domain.GrievanceResolved {
		s.notifications.NotifyGrievanceResolved(ctx, grievance)
	}
	return grievance, nil
}
