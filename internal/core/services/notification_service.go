package services

import (
	"context"
	"log"

	"sevasetu/internal/adapters/persistence/models"
)

// NotificationService fans out user-facing events. Delivery channels (SMS,
// push) plug in behind it; the default implementation records events to the
// application log.
type NotificationService struct {
	enabled bool
}

// NewNotificationService creates a notification service
func NewNotificationService(enabled bool) *NotificationService {
	return &NotificationService{enabled: enabled}
}

// NotifyApplicationSubmitted records that an application was filed
func (s *NotificationService) NotifyApplicationSubmitted(ctx context.Context, app *models.Application) {
	if !s.enabled {
		return
	}
	log.Printf("🔔 Application %s submitted by user %s for scheme %s", app.ID, app.UserID, app.SchemeID)
}

// NotifyApplicationStatusChanged records a status transition
func (s *NotificationService) NotifyApplicationStatusChanged(ctx context.Context, app *models.Application, previousStatus string) {
	if !s.enabled {
		return
	}
	log.Printf("🔔 Application %s for user %s moved from %s to %s", app.ID, app.UserID, previousStatus, app.Status)
}

// NotifyGrievanceFiled records that a grievance was opened
func (s *NotificationService) NotifyGrievanceFiled(ctx context.Context, grievance *models.Grievance) {
	if !s.enabled {
		return
	}
	log.Printf("🔔 Grievance %s filed by user %s: %s", grievance.ID, grievance.UserID, grievance.Title)
}

// NotifyGrievanceResolved records that a grievance reached resolution
func (s *NotificationService) NotifyGrievanceResolved(ctx context.Context, grievance *models.Grievance) {
	if !s.enabled {
		return
	}
	log.Printf("🔔 Grievance %s for user %s resolved", grievance.ID, grievance.UserID)
}
