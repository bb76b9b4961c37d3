package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Profile errors
var (
	ErrProfileNotFound      = errors.New("citizen profile not found")
	ErrProfileAlreadyExists = errors.New("citizen profile already exists")
)

// Scheme and recommendation errors
var (
	ErrSchemeNotFound = errors.New("scheme not found")
)

// Application and grievance errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrGrievanceNotFound   = errors.New("grievance not found")
)

// Chat errors
var (
	ErrConversationNotFound = errors.New("conversation not found")
)
