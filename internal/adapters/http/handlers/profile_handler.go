package handlers

import (
	"errors"
	"strings"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/core/domain"
	"sevasetu/internal/core/services"
	"sevasetu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ProfileHandler handles citizen profile endpoints
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfileRequest represents profile creation request body
type CreateProfileRequest struct {
	FullName          string         `json:"full_name"`
	AadhaarNumber     string         `json:"aadhaar_number"`
	DateOfBirth       *string        `json:"date_of_birth"`
	Gender            string         `json:"gender"`
	State             string         `json:"state"`
	District          string         `json:"district"`
	Pincode           string         `json:"pincode"`
	AnnualIncome      *int           `json:"annual_income"`
	Category          *string        `json:"category"`
	Occupation        *string        `json:"occupation"`
	Education         string         `json:"education"`
	FamilySize        *int           `json:"family_size"`
	HasDisability     bool           `json:"has_disability"`
	DisabilityType    string         `json:"disability_type"`
	BankAccount       string         `json:"bank_account"`
	AdditionalDetails models.JSONMap `json:"additional_details"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	FullName       *string `json:"full_name"`
	DateOfBirth    *string `json:"date_of_birth"`
	Gender         *string `json:"gender"`
	State          *string `json:"state"`
	District       *string `json:"district"`
	Pincode        *string `json:"pincode"`
	AnnualIncome   *int    `json:"annual_income"`
	Category       *string `json:"category"`
	Occupation     *string `json:"occupation"`
	Education      *string `json:"education"`
	FamilySize     *int    `json:"family_size"`
	HasDisability  *bool   `json:"has_disability"`
	DisabilityType *string `json:"disability_type"`
	BankAccount    *string `json:"bank_account"`
}

// UpdateLanguageRequest represents a language preference change
type UpdateLanguageRequest struct {
	Language string `json:"language"`
}

// Get returns the current user's profile
// @Summary Get citizen profile
// @Description Get the authenticated user's citizen profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	profile, err := h.profileService.Get(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return response.NotFound(c, "Citizen profile not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}

	return response.Success(c, "Profile retrieved successfully", profile)
}

// Create creates the current user's profile
// @Summary Create citizen profile
// @Description Create the citizen profile and generate the first recommendation set
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateProfileRequest true "Profile data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /profile [post]
func (h *ProfileHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.profileService.Create(c.Context(), userID, services.CreateProfileInput{
		FullName:          strings.TrimSpace(req.FullName),
		AadhaarNumber:     strings.TrimSpace(req.AadhaarNumber),
		DateOfBirth:       req.DateOfBirth,
		Gender:            req.Gender,
		State:             strings.TrimSpace(req.State),
		District:          strings.TrimSpace(req.District),
		Pincode:           strings.TrimSpace(req.Pincode),
		AnnualIncome:      req.AnnualIncome,
		Category:          req.Category,
		Occupation:        req.Occupation,
		Education:         req.Education,
		FamilySize:        req.FamilySize,
		HasDisability:     req.HasDisability,
		DisabilityType:    req.DisabilityType,
		BankAccount:       req.BankAccount,
		AdditionalDetails: req.AdditionalDetails,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileAlreadyExists):
			return response.Conflict(c, "Citizen profile already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to create profile")
		}
	}

	return response.Created(c, "Profile created successfully", profile)
}

// Update applies a partial update to the current user's profile
// @Summary Update citizen profile
// @Description Update profile fields and refresh the recommendation set
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	profile, err := h.profileService.Update(c.Context(), userID, services.UpdateProfileInput{
		FullName:       req.FullName,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		State:          req.State,
		District:       req.District,
		Pincode:        req.Pincode,
		AnnualIncome:   req.AnnualIncome,
		Category:       req.Category,
		Occupation:     req.Occupation,
		Education:      req.Education,
		FamilySize:     req.FamilySize,
		HasDisability:  req.HasDisability,
		DisabilityType: req.DisabilityType,
		BankAccount:    req.BankAccount,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			return response.NotFound(c, "Citizen profile not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update profile")
		}
	}

	return response.Success(c, "Profile updated successfully", profile)
}

// UpdateLanguage changes the user's preferred language
// @Summary Update preferred language
// @Description Change the language used for assistant replies
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateLanguageRequest true "Language code"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /profile/language [put]
func (h *ProfileHandler) UpdateLanguage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req UpdateLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.profileService.UpdateLanguage(c.Context(), userID, req.Language)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to update language")
	}

	return response.Success(c, "Language updated successfully", user.ToResponse())
}
