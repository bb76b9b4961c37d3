package handlers

import (
	"errors"

	"sevasetu/internal/core/domain"
	"sevasetu/internal/core/services"
	"sevasetu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles scheme application endpoints
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// CreateApplicationRequest represents application filing request body
type CreateApplicationRequest struct {
	SchemeID  string   `json:"scheme_id"`
	Documents []string `json:"documents"`
	Amount    *float64 `json:"amount"`
	Remarks   string   `json:"remarks"`
}

// UpdateApplicationStatusRequest represents a status transition
type UpdateApplicationStatusRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// Create files a new application
// @Summary File scheme application
// @Description File an application against an active scheme
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateApplicationRequest true "Application data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.SchemeID == "" {
		return response.BadRequest(c, "Scheme ID is required")
	}

	app, err := h.applicationService.Create(c.Context(), userID, services.CreateApplicationInput{
		SchemeID:  req.SchemeID,
		Documents: req.Documents,
		Amount:    req.Amount,
		Remarks:   req.Remarks,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSchemeNotFound) {
			return response.NotFound(c, "Scheme not found")
		}
		return response.InternalServerError(c, "Failed to file application")
	}

	return response.Created(c, "Application filed successfully", app)
}

// List returns the user's applications
// @Summary List applications
// @Description All applications filed by the authenticated user
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	apps, err := h.applicationService.GetForUser(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved successfully", apps)
}

// Get returns one application
// @Summary Get application by ID
// @Description One application, owner only
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	app, err := h.applicationService.GetByID(c.Context(), userID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			return response.NotFound(c, "Application not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to access this application")
		default:
			return response.InternalServerError(c, "Failed to get application")
		}
	}

	return response.Success(c, "Application retrieved successfully", app)
}

// UpdateStatus transitions an application to a new status
// @Summary Update application status
// @Description Move an application through its lifecycle
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param body body UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	app, err := h.applicationService.UpdateStatus(c.Context(), userID, c.Params("id"), req.Status, req.Remarks)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			return response.NotFound(c, "Application not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to access this application")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update application status")
		}
	}

	return response.Success(c, "Application status updated successfully", app)
}
