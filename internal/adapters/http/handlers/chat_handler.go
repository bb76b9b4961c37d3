package handlers

import (
	"errors"

	"sevasetu/internal/core/domain"
	"sevasetu/internal/core/services"
	"sevasetu/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles assistant chat and translation endpoints
type ChatHandler struct {
	chatService *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// StartConversationRequest represents conversation start request body
type StartConversationRequest struct {
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
}

// SendMessageRequest represents chat message request body
type SendMessageRequest struct {
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
}

// TranslateRequest represents translation request body
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

// Start opens a conversation session
// @Summary Start chat conversation
// @Description Open an assistant conversation. Works for anonymous sessions too.
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body StartConversationRequest true "Session data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /chat/conversations [post]
func (h *ChatHandler) Start(c *fiber.Ctx) error {
	var req StartConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var userID *string
	if id, ok := c.Locals("userID").(string); ok && id != "" {
		userID = &id
	}

	conversation, err := h.chatService.StartConversation(c.Context(), userID, req.SessionID, req.Language)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to start conversation")
	}

	return response.Created(c, "Conversation started successfully", conversation)
}

// Get returns a conversation with its transcript
// @Summary Get conversation
// @Description Conversation and full message transcript by session ID
// @Tags Chat
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /chat/conversations/{session_id} [get]
func (h *ChatHandler) Get(c *fiber.Ctx) error {
	conversation, messages, err := h.chatService.GetConversation(c.Context(), c.Params("session_id"))
	if err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			return response.NotFound(c, "Conversation not found")
		}
		return response.InternalServerError(c, "Failed to get conversation")
	}

	return response.Success(c, "Conversation retrieved successfully", fiber.Map{
		"conversation": conversation,
		"messages":     messages,
	})
}

// SendMessage stores a message and returns the assistant's reply
// @Summary Send chat message
// @Description Send a message and receive the assistant's reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body SendMessageRequest true "Message"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /chat/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	exchange, err := h.chatService.SendMessage(c.Context(), req.SessionID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConversationNotFound):
			return response.NotFound(c, "Conversation not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.BadGateway(c, "Assistant is unavailable, please try again")
		}
	}

	return response.Success(c, "Message sent successfully", exchange)
}

// Translate converts text to a supported language
// @Summary Translate text
// @Description Translate text into one of the supported languages
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body TranslateRequest true "Text and target language"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /chat/translate [post]
func (h *ChatHandler) Translate(c *fiber.Ctx) error {
	var req TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	translated, err := h.chatService.Translate(c.Context(), req.Text, req.TargetLanguage)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, err.Error())
		}
		return response.BadGateway(c, "Translation is unavailable, please try again")
	}

	return response.Success(c, "Text translated successfully", fiber.Map{
		"translated_text": translated,
		"language":        req.TargetLanguage,
	})
}
