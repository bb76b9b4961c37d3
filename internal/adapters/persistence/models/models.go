package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Users & Sessions
// ============================================================

// User represents users table
type User struct {
	ID                string         `gorm:"primaryKey;size:36" json:"id"`
	Username          string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email             string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password          string         `gorm:"size:255;not null" json:"-"`
	Phone             string         `gorm:"size:15" json:"phone,omitempty"`
	PreferredLanguage string         `gorm:"size:5;default:'en'" json:"preferred_language"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID primary key
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserResponse DTO
type UserResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	PreferredLanguage string    `json:"preferred_language"`
	CreatedAt         time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		Phone:             u.Phone,
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"size:36;index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Citizen Profiles
// ============================================================

// CitizenProfile represents citizen_profiles table. One profile per user;
// the unique index on user_id enforces the 1:1.
type CitizenProfile struct {
	ID                string    `gorm:"primaryKey;size:36" json:"id"`
	UserID            string    `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	FullName          string    `gorm:"size:100;not null" json:"full_name"`
	AadhaarNumber     string    `gorm:"size:12" json:"aadhaar_number,omitempty"`
	DateOfBirth       *string   `gorm:"size:10" json:"date_of_birth"` // YYYY-MM-DD
	Gender            string    `gorm:"size:10" json:"gender,omitempty"`
	State             string    `gorm:"size:50;not null" json:"state"`
	District          string    `gorm:"size:50" json:"district,omitempty"`
	Pincode           string    `gorm:"size:6" json:"pincode,omitempty"`
	AnnualIncome      *int      `json:"annual_income"`
	Category          *string   `gorm:"size:20" json:"category"`
	Occupation        *string   `gorm:"size:50" json:"occupation"`
	Education         string    `gorm:"size:50" json:"education,omitempty"`
	FamilySize        *int      `json:"family_size"`
	HasDisability     bool      `gorm:"default:false" json:"has_disability"`
	DisabilityType    string    `gorm:"size:100" json:"disability_type,omitempty"`
	BankAccount       string    `gorm:"size:30" json:"bank_account,omitempty"`
	AdditionalDetails JSONMap   `gorm:"type:json" json:"additional_details,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CitizenProfile) TableName() string {
	return "citizen_profiles"
}

// BeforeCreate assigns a UUID primary key
func (p *CitizenProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Scheme Catalog
// ============================================================

// Scheme represents schemes table. Target lists are NULL when the scheme is
// unrestricted on that axis.
type Scheme struct {
	ID                  string         `gorm:"primaryKey;size:36" json:"id"`
	Name                string         `gorm:"size:200;not null" json:"name"`
	Description         string         `gorm:"type:text;not null" json:"description"`
	Category            string         `gorm:"size:50;not null;index" json:"category"`
	Ministry            string         `gorm:"size:100;not null" json:"ministry"`
	State               *string        `gorm:"size:50;index" json:"state"` // NULL for central schemes
	EligibilityCriteria JSONMap        `gorm:"type:json" json:"eligibility_criteria"`
	Benefits            string         `gorm:"type:text" json:"benefits"`
	ApplicationProcess  string         `gorm:"type:text" json:"application_process"`
	Documents           StringList     `gorm:"type:json" json:"documents"`
	ApplicationURL      string         `gorm:"size:255" json:"application_url,omitempty"`
	IsActive            bool           `gorm:"default:true;index" json:"is_active"`
	MaxIncome           *int           `json:"max_income"`
	MinAge              *int           `json:"min_age"`
	MaxAge              *int           `json:"max_age"`
	TargetCategories    StringList     `gorm:"type:json" json:"target_categories"`
	TargetOccupations   StringList     `gorm:"type:json" json:"target_occupations"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Scheme) TableName() string {
	return "schemes"
}

// BeforeCreate assigns a UUID primary key
func (s *Scheme) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Recommendations
// ============================================================

// Recommendation represents recommendations table. A user's set is fully
// replaced on every generation; rows are never updated in place.
type Recommendation struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	SchemeID  string    `gorm:"size:36;not null" json:"scheme_id"`
	Score     float64   `gorm:"not null" json:"score"`
	Reason    string    `gorm:"size:255" json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// BeforeCreate assigns a UUID primary key
func (r *Recommendation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Applications
// ============================================================

// Application represents applications table
type Application struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	UserID        string    `gorm:"size:36;not null;index" json:"user_id"`
	SchemeID      string    `gorm:"size:36;not null" json:"scheme_id"`
	ApplicationID string    `gorm:"size:50" json:"application_id,omitempty"` // external portal reference
	Status        string    `gorm:"size:20;not null;default:'submitted'" json:"status"`
	Documents     StringList `gorm:"type:json" json:"documents"`
	StatusHistory JSONMap   `gorm:"type:json" json:"status_history"`
	Amount        *float64  `gorm:"type:decimal(12,2)" json:"amount"`
	Remarks       string    `gorm:"type:text" json:"remarks,omitempty"`
	AppliedAt     time.Time `gorm:"autoCreateTime" json:"applied_at"`
	LastUpdated   time.Time `gorm:"autoUpdateTime" json:"last_updated"`

	Scheme *Scheme `gorm:"foreignKey:SchemeID" json:"scheme,omitempty"`
}

func (Application) TableName() string {
	return "applications"
}

// BeforeCreate assigns a UUID primary key
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Chat
// ============================================================

// ChatConversation represents chat_conversations table
type ChatConversation struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserID       *string   `gorm:"size:36;index" json:"user_id"`
	SessionID    string    `gorm:"size:64;uniqueIndex;not null" json:"session_id"`
	Language     string    `gorm:"size:5;default:'en'" json:"language"`
	StartedAt    time.Time `gorm:"autoCreateTime" json:"started_at"`
	LastActiveAt time.Time `gorm:"autoUpdateTime" json:"last_active_at"`
}

func (ChatConversation) TableName() string {
	return "chat_conversations"
}

// BeforeCreate assigns a UUID primary key
func (c *ChatConversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Chat message roles
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage represents chat_messages table
type ChatMessage struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	ConversationID string    `gorm:"size:36;not null;index" json:"conversation_id"`
	Role           string    `gorm:"size:10;not null" json:"role"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	ContentType    string    `gorm:"size:10;default:'text'" json:"content_type"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

// BeforeCreate assigns a UUID primary key
func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Grievances
// ============================================================

// Grievance represents grievances table
type Grievance struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	UserID        string     `gorm:"size:36;not null;index" json:"user_id"`
	ApplicationID *string    `gorm:"size:36" json:"application_id"`
	Title         string     `gorm:"size:200;not null" json:"title"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	Category      string     `gorm:"size:50;not null" json:"category"`
	Priority      string     `gorm:"size:10;default:'medium'" json:"priority"`
	Status        string     `gorm:"size:20;default:'open'" json:"status"`
	AssignedTo    string     `gorm:"size:100" json:"assigned_to,omitempty"`
	Resolution    string     `gorm:"type:text" json:"resolution,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at"`
}

func (Grievance) TableName() string {
	return "grievances"
}

// BeforeCreate assigns a UUID primary key
func (g *Grievance) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&CitizenProfile{},
		&Scheme{},
		&Recommendation{},
		&Application{},
		&ChatConversation{},
		&ChatMessage{},
		&Grievance{},
	)
}
