package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/adapters/persistence/repositories"
	"sevasetu/internal/core/domain"
)

// historyWindow caps how many prior messages are replayed to the model
const historyWindow = 10

// ChatTurn is one prior exchange replayed to the assistant model
type ChatTurn struct {
	Role    string
	Content string
}

// ChatModel is the port to the conversational assistant backend
type ChatModel interface {
	GenerateReply(ctx context.Context, message, language string, history []ChatTurn) (string, error)
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// ChatExchange bundles the stored user message with the assistant's reply
type ChatExchange struct {
	UserMessage      *models.ChatMessage `json:"user_message"`
	AssistantMessage *models.ChatMessage `json:"assistant_message"`
}

// ChatService runs assistant conversations over the ChatModel port
type ChatService struct {
	chatRepo repositories.ChatRepository
	model    ChatModel
}

// NewChatService creates a chat service
func NewChatService(chatRepo repositories.ChatRepository, model ChatModel) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		model:    model,
	}
}

// StartConversation opens a conversation session. Anonymous sessions carry a
// nil user ID. An empty session ID gets a generated one.
func (s *ChatService) StartConversation(ctx context.Context, userID *string, sessionID, language string) (*models.ChatConversation, error) {
	if language == "" {
		language = "en"
	}
	if !domain.IsSupportedLanguage(language) {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, language)
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if existing, err := s.chatRepo.GetConversationBySessionID(ctx, sessionID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	conversation := &models.ChatConversation{
		UserID:    userID,
		SessionID: sessionID,
		Language:  language,
	}
	if err := s.chatRepo.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// GetConversation returns a conversation and its full transcript
func (s *ChatService) GetConversation(ctx context.Context, sessionID string) (*models.ChatConversation, []*models.ChatMessage, error) {
	conversation, err := s.chatRepo.GetConversationBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrConversationNotFound
		}
		return nil, nil, err
	}

	messages, err := s.chatRepo.GetMessages(ctx, conversation.ID)
	if err != nil {
		return nil, nil, err
	}
	return conversation, messages, nil
}

// SendMessage stores the user's message, asks the model for a reply with the
// recent transcript as context, and stores the reply
func (s *ChatService) SendMessage(ctx context.Context, sessionID, content string) (*ChatExchange, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: message content is required", domain.ErrInvalidInput)
	}

	conversation, err := s.chatRepo.GetConversationBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}

	history, err := s.chatRepo.GetMessages(ctx, conversation.ID)
	if err != nil {
		return nil, err
	}
	turns := make([]ChatTurn, 0, historyWindow)
	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	for _, msg := range history[start:] {
		turns = append(turns, ChatTurn{Role: msg.Role, Content: msg.Content})
	}

	userMessage := &models.ChatMessage{
		ConversationID: conversation.ID,
		Role:           models.ChatRoleUser,
		Content:        content,
		ContentType:    "text",
	}
	if err := s.chatRepo.CreateMessage(ctx, userMessage); err != nil {
		return nil, err
	}

	reply, err := s.model.GenerateReply(ctx, content, conversation.Language, turns)
	if err != nil {
		return nil, err
	}

	assistantMessage := &models.ChatMessage{
		ConversationID: conversation.ID,
		Role:           models.ChatRoleAssistant,
		Content:        reply,
		ContentType:    "text",
	}
	if err := s.chatRepo.CreateMessage(ctx, assistantMessage); err != nil {
		return nil, err
	}

	return &ChatExchange{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
	}, nil
}

// Translate converts text into one of the supported languages
func (s *ChatService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	if !domain.IsSupportedLanguage(targetLanguage) {
		return "", fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, targetLanguage)
	}
	return s.model.Translate(ctx, text, targetLanguage)
}
