package repositories

import (
	"context"

	"sevasetu/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) error
}

// ProfileRepository defines citizen profile repository interface
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.CitizenProfile) error
	GetByUserID(ctx context.Context, userID string) (*models.CitizenProfile, error)
	Update(ctx context.Context, profile *models.CitizenProfile) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

// SchemeRepository defines scheme catalog repository interface. All reads
// return active schemes only; deactivated rows are invisible to the core.
type SchemeRepository interface {
	Create(ctx context.Context, scheme *models.Scheme) error
	GetAllActive(ctx context.Context) ([]*models.Scheme, error)
	GetByID(ctx context.Context, id string) (*models.Scheme, error)
	List(ctx context.Context, filters *SchemeFilters, offset, limit int) ([]*models.Scheme, int64, error)
	Categories(ctx context.Context) ([]string, error)
	Popular(ctx context.Context, limit int) ([]*models.Scheme, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// RecommendationRepository defines recommendation repository interface.
// ReplaceForUser must swap a user's set atomically so concurrent readers
// never observe a half-deleted, half-inserted set.
type RecommendationRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]*models.Recommendation, error)
	ReplaceForUser(ctx context.Context, userID string, recs []*models.Recommendation) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// ApplicationRepository defines application repository interface
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id string) (*models.Application, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Application, error)
	Update(ctx context.Context, application *models.Application) error
}

// ChatRepository defines chat transcript repository interface
type ChatRepository interface {
	CreateConversation(ctx context.Context, conversation *models.ChatConversation) error
	GetConversationBySessionID(ctx context.Context, sessionID string) (*models.ChatConversation, error)
	GetConversationByID(ctx context.Context, id string) (*models.ChatConversation, error)
	CreateMessage(ctx context.Context, message *models.ChatMessage) error
	GetMessages(ctx context.Context, conversationID string) ([]*models.ChatMessage, error)
}

// GrievanceRepository defines grievance repository interface
type GrievanceRepository interface {
	Create(ctx context.Context, grievance *models.Grievance) error
	GetByID(ctx context.Context, id string) (*models.Grievance, error)
	GetByUserID(ctx context.Context, userID string) ([]*models.Grievance, error)
	Update(ctx context.Context, grievance *models.Grievance) error
}
