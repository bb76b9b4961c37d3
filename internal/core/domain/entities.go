package domain

// SocialCategory represents the reservation category of a citizen
type SocialCategory string

const (
	CategoryGeneral SocialCategory = "General"
	CategoryOBC     SocialCategory = "OBC"
	CategorySC      SocialCategory = "SC"
	CategoryST      SocialCategory = "ST"
)

// SocialCategories lists every valid social category
var SocialCategories = []SocialCategory{
	CategoryGeneral,
	CategoryOBC,
	CategorySC,
	CategoryST,
}

// IsValidCategory checks whether a category string belongs to the closed set
func IsValidCategory(category string) bool {
	for _, c := range SocialCategories {
		if string(c) == category {
			return true
		}
	}
	return false
}

// EligibilityStatus tags how well a citizen matches a scheme
type EligibilityStatus string

const (
	StatusEligible          EligibilityStatus = "eligible"
	StatusPartiallyEligible EligibilityStatus = "partially_eligible"
)

// Application statuses
const (
	ApplicationSubmitted   = "submitted"
	ApplicationUnderReview = "under_review"
	ApplicationApproved    = "approved"
	ApplicationRejected    = "rejected"
	ApplicationDisbursed   = "disbursed"
)

// IsValidApplicationStatus checks whether a status string is known
func IsValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationSubmitted, ApplicationUnderReview, ApplicationApproved,
		ApplicationRejected, ApplicationDisbursed:
		return true
	}
	return false
}

// Grievance priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Grievance statuses
const (
	GrievanceOpen       = "open"
	GrievanceInProgress = "in_progress"
	GrievanceResolved   = "resolved"
	GrievanceClosed     = "closed"
)

// SupportedLanguages lists the languages the chatbot and translation
// endpoints accept
var SupportedLanguages = []string{
	"en", // English
	"hi", // Hindi
	"bn", // Bengali
	"te", // Telugu
	"mr", // Marathi
	"ta", // Tamil
	"gu", // Gujarati
	"kn", // Kannada
	"ml", // Malayalam
	"pa", // Punjabi
}

// IsSupportedLanguage checks whether a language code is supported
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l == code {
			return true
		}
	}
	return false
}
