package repositories

import (
	"context"

	"sevasetu/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// chatRepository handles chat transcript data access
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

// CreateConversation creates a new conversation
func (r *chatRepository) CreateConversation(ctx context.Context, conversation *models.ChatConversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

// GetConversationBySessionID gets a conversation by its session ID
func (r *chatRepository) GetConversationBySessionID(ctx context.Context, sessionID string) (*models.ChatConversation, error) {
	var conversation models.ChatConversation
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetConversationByID gets a conversation by ID
func (r *chatRepository) GetConversationByID(ctx context.Context, id string) (*models.ChatConversation, error) {
	var conversation models.ChatConversation
	err := r.db.WithContext(ctx).First(&conversation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// CreateMessage appends a message to a conversation
func (r *chatRepository) CreateMessage(ctx context.Context, message *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// GetMessages returns a conversation's messages, oldest first
func (r *chatRepository) GetMessages(ctx context.Context, conversationID string) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
