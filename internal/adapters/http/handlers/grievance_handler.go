package handlers

import (
	"errors"

	"sevasetu/internal/core/domain"
	"sevasetu/internal/core/services"
	"sevasetu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// GrievanceHandler handles grievance endpoints
type GrievanceHandler struct {
	grievanceService *services.GrievanceService
}

// NewGrievanceHandler creates a new grievance handler
func NewGrievanceHandler(grievanceService *services.GrievanceService) *GrievanceHandler {
	return &GrievanceHandler{grievanceService: grievanceService}
}

// CreateGrievanceRequest represents grievance filing request body
type CreateGrievanceRequest struct {
	ApplicationID *string `json:"application_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Priority      string  `json:"priority"`
}

// UpdateGrievanceStatusRequest represents a grievance status change
type UpdateGrievanceStatusRequest struct {
	Status     string `json:"status"`
	Resolution string `json:"resolution"`
}

// Create files a new grievance
// @Summary File grievance
// @Description File a grievance, optionally linked to an application
// @Tags Grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateGrievanceRequest true "Grievance data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /grievances [post]
func (h *GrievanceHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateGrievanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	grievance, err := h.grievanceService.Create(c.Context(), userID, services.CreateGrievanceInput{
		ApplicationID: req.ApplicationID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to file grievance")
	}

	return response.Created(c, "Grievance filed successfully", grievance)
}

// List returns the user's grievances
// @Summary List grievances
// @Description All grievances filed by the authenticated user
// @Tags Grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /grievances [get]
func (h *GrievanceHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	grievances, err := h.grievanceService.GetForUser(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list grievances")
	}

	return response.Success(c, "Grievances retrieved successfully", grievances)
}

// Get returns one grievance
// @Summary Get grievance by ID
// @Description One grievance, owner only
// @Tags Grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Grievance ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grievances/{id} [get]
func (h *GrievanceHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	grievance, err := h.grievanceService.GetByID(c.Context(), userID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGrievanceNotFound):
			return response.NotFound(c, "Grievance not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to access this grievance")
		default:
			return response.InternalServerError(c, "Failed to get grievance")
		}
	}

	return response.Success(c, "Grievance retrieved successfully", grievance)
}

// UpdateStatus moves a grievance through its lifecycle
// @Summary Update grievance status
// @Description Transition a grievance, recording resolution when resolved
// @Tags Grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Grievance ID"
// @Param body body UpdateGrievanceStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /grievances/{id}/status [put]
func (h *GrievanceHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UpdateGrievanceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	grievance, err := h.grievanceService.UpdateStatus(c.Context(), userID, c.Params("id"), req.Status, req.Resolution)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrGrievanceNotFound):
			return response.NotFound(c, "Grievance not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You don't have permission to access this grievance")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update grievance status")
		}
	}

	return response.Success(c, "Grievance status updated successfully", grievance)
}
