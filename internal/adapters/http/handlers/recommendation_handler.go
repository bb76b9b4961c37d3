package handlers

import (
	"errors"

	"sevasetu/internal/core/domain"
	"sevasetu/internal/core/services"
	"sevasetu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RecommendationHandler handles recommendation endpoints
type RecommendationHandler struct {
	recommendationService *services.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// Get returns the user's stored recommendation set
// @Summary Get recommendations
// @Description Stored recommendations with freshly evaluated eligibility details
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /recommendations [get]
func (h *RecommendationHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	recommendations, err := h.recommendationService.GetForUser(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to get recommendations")
	}

	return response.Success(c, "Recommendations retrieved successfully", recommendations)
}

// Generate computes the recommendation set from the current profile
// @Summary Generate recommendations
// @Description Score all active schemes against the profile and replace the stored set
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /recommendations/generate [post]
func (h *RecommendationHandler) Generate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	recommendations, err := h.recommendationService.Generate(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return response.NotFound(c, "Citizen profile not found")
		}
		return response.InternalServerError(c, "Failed to generate recommendations")
	}

	return response.Success(c, "Recommendations generated successfully", recommendations)
}

// Refresh recomputes the recommendation set
// @Summary Refresh recommendations
// @Description Recompute the stored recommendation set from the current profile and catalog
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /recommendations/refresh [post]
func (h *RecommendationHandler) Refresh(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	recommendations, err := h.recommendationService.Refresh(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return response.NotFound(c, "Citizen profile not found")
		}
		return response.InternalServerError(c, "Failed to refresh recommendations")
	}

	return response.Success(c, "Recommendations refreshed successfully", recommendations)
}

// GetByCategory filters the stored set by scheme category
// @Summary Get recommendations by category
// @Description Stored recommendations filtered to one scheme category
// @Tags Recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Scheme category"
// @Success 200 {object} response.Response
// @Router /recommendations/category/{category} [get]
func (h *RecommendationHandler) GetByCategory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	recommendations, err := h.recommendationService.GetByCategory(c.Context(), userID, c.Params("category"))
	if err != nil {
		return response.InternalServerError(c, "Failed to get recommendations")
	}

	return response.Success(c, "Recommendations retrieved successfully", recommendations)
}
