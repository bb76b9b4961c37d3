package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sevasetu/internal/core/domain"
)

func newGrievanceFixture(t *testing.T) *GrievanceService {
	t.Helper()
	return NewGrievanceService(newFakeGrievanceRepo(), NewNotificationService(false))
}

func TestGrievanceCreate(t *testing.T) {
	svc := newGrievanceFixture(t)

	grievance, err := svc.Create(context.Background(), "u1", CreateGrievanceInput{
		Title:       "Payment not received",
		Description: "Second installment pending for three months",
		Category:    "payments",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GrievanceOpen, grievance.Status)
	assert.Equal(t, domain.PriorityMedium, grievance.Priority)

	_, err = svc.Create(context.Background(), "u1", CreateGrievanceInput{Title: "no description"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), "u1", CreateGrievanceInput{
		Title: "t", Description: "d", Priority: "urgent",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGrievanceResolve(t *testing.T) {
	svc := newGrievanceFixture(t)
	grievance, err := svc.Create(context.Background(), "u1", CreateGrievanceInput{
		Title: "t", Description: "d", Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)

	resolved, err := svc.UpdateStatus(context.Background(), "u1", grievance.ID, domain.GrievanceResolved, "installment released")
	require.NoError(t, err)
	assert.Equal(t, domain.GrievanceResolved, resolved.Status)
	assert.Equal(t, "installment released", resolved.Resolution)
	assert.NotNil(t, resolved.ResolvedAt)

	_, err = svc.UpdateStatus(context.Background(), "other", grievance.ID, domain.GrievanceClosed, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
