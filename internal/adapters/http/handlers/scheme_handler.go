package handlers

import (
	"errors"
	"strconv"

	"sevasetu/internal/adapters/persistence/repositories"
	"sevasetu/internal/core/domain"
	"sevasetu/internal/core/services"
	"sevasetu/internal/pkg/pagination"
	"sevasetu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SchemeHandler handles scheme catalog endpoints
type SchemeHandler struct {
	schemeService *services.SchemeService
}

// NewSchemeHandler creates a new scheme handler
func NewSchemeHandler(schemeService *services.SchemeService) *SchemeHandler {
	return &SchemeHandler{schemeService: schemeService}
}

// List returns a filtered page of schemes
// @Summary List schemes
// @Description List active schemes with optional category, state, income and search filters
// @Tags Schemes
// @Accept json
// @Produce json
// @Param category query string false "Filter by category"
// @Param state query string false "Filter by state"
// @Param max_income query int false "Only schemes open at this income"
// @Param search query string false "Search in name and description"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} pagination.Response
// @Router /schemes [get]
func (h *SchemeHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	filters := &repositories.SchemeFilters{
		Category: c.Query("category"),
		State:    c.Query("state"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("max_income"); raw != "" {
		if income, err := strconv.Atoi(raw); err == nil {
			filters.MaxIncome = &income
		}
	}

	schemes, total, err := h.schemeService.List(c.Context(), filters, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list schemes")
	}

	return c.JSON(pagination.NewResponse(schemes, params, total))
}

// Get returns one scheme
// @Summary Get scheme by ID
// @Description Get one active scheme
// @Tags Schemes
// @Accept json
// @Produce json
// @Param id path string true "Scheme ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /schemes/{id} [get]
func (h *SchemeHandler) Get(c *fiber.Ctx) error {
	scheme, err := h.schemeService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSchemeNotFound) {
			return response.NotFound(c, "Scheme not found")
		}
		return response.InternalServerError(c, "Failed to get scheme")
	}

	return response.Success(c, "Scheme retrieved successfully", scheme)
}

// Categories returns the distinct scheme categories
// @Summary List scheme categories
// @Description Distinct categories across active schemes
// @Tags Schemes
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /schemes/categories [get]
func (h *SchemeHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.schemeService.Categories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list categories")
	}

	return response.Success(c, "Categories retrieved successfully", categories)
}

// Popular returns the most applied-to schemes
// @Summary List popular schemes
// @Description Active schemes ordered by application count
// @Tags Schemes
// @Accept json
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {object} response.Response
// @Router /schemes/popular [get]
func (h *SchemeHandler) Popular(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	schemes, err := h.schemeService.Popular(c.Context(), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list popular schemes")
	}

	return response.Success(c, "Popular schemes retrieved successfully", schemes)
}

// CheckEligibility scores the user's profile against one scheme
// @Summary Check eligibility for a scheme
// @Description Score the authenticated user's profile against one scheme
// @Tags Schemes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scheme ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /schemes/{id}/eligibility [get]
func (h *SchemeHandler) CheckEligibility(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	result, err := h.schemeService.CheckEligibility(c.Context(), userID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			return response.NotFound(c, "Citizen profile not found")
		case errors.Is(err, domain.ErrSchemeNotFound):
			return response.NotFound(c, "Scheme not found")
		default:
			return response.InternalServerError(c, "Failed to check eligibility")
		}
	}

	return response.Success(c, "Eligibility checked successfully", result)
}
