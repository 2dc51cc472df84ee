package dto

import "awards_backend/internal/models"

// SignupRequest - new account creation
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest - credential check
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DraftRequest - wholesale draft overwrite
type DraftRequest struct {
	Data map[string]interface{} `json:"data" validate:"required"`
}

// RegistrationRequest - registration completion for one category.
// Status defaults to "qualified" when omitted.
type RegistrationRequest struct {
	CategorySlug string                 `json:"categorySlug" validate:"required"`
	Data         map[string]interface{} `json:"data" validate:"required"`
	Status       models.CategoryStatus  `json:"status" validate:"omitempty,oneof=qualified unqualified waiting-approval"`
}

// SubmitApplicationRequest - final submission record
type SubmitApplicationRequest struct {
	CategorySlug    string `json:"categorySlug" validate:"required"`
	ReferenceNumber string `json:"referenceNumber" validate:"required"`
	SubmittedAt     string `json:"submittedAt" validate:"required"`
}

// ReviewRequest - admin approval/rejection. Action is checked in the
// service so an unknown value reports INVALID_REVIEW_ACTION rather than
// a generic validation error.
type ReviewRequest struct {
	UserID       int    `json:"userId" validate:"required"`
	CategorySlug string `json:"categorySlug" validate:"required"`
	Action       string `json:"action" validate:"required"`
}

// UserResponse is the user view returned by signup, login and me.
// It never carries the password field.
type UserResponse struct {
	ID                int                              `json:"id"`
	Email             string                           `json:"email"`
	Registered        bool                             `json:"registered"`
	Applied           bool                             `json:"applied"`
	AppliedCategories []string                         `json:"appliedCategories"`
	CategoryStatuses  map[string]models.CategoryStatus `json:"categoryStatuses"`
	RegistrationData  map[string]interface{}           `json:"registrationData"`
	Submissions       map[string]models.Submission     `json:"submissions"`
	Draft             map[string]interface{}           `json:"draft"`
	IsAdmin           bool                             `json:"isAdmin"`
	IsDirector        bool                             `json:"isDirector"`
}

// NewUserResponse builds the user view, normalizing nil collections so
// clients always see [] and {} rather than null.
func NewUserResponse(u *models.User) *UserResponse {
	resp := &UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Registered:        u.Registered,
		Applied:           u.Applied,
		AppliedCategories: u.AppliedCategories,
		CategoryStatuses:  u.CategoryStatuses,
		RegistrationData:  u.RegistrationData,
		Submissions:       u.Submissions,
		Draft:             u.Draft,
		IsAdmin:           u.IsAdmin,
		IsDirector:        u.IsDirector,
	}
	if resp.AppliedCategories == nil {
		resp.AppliedCategories = []string{}
	}
	if resp.CategoryStatuses == nil {
		resp.CategoryStatuses = map[string]models.CategoryStatus{}
	}
	if resp.Submissions == nil {
		resp.Submissions = map[string]models.Submission{}
	}
	return resp
}

// CheckCategoryResponse - applied-status check result
type CheckCategoryResponse struct {
	HasApplied        bool     `json:"hasApplied"`
	AppliedCategories []string `json:"appliedCategories"`
}

// DraftResponse - current draft, possibly null
type DraftResponse struct {
	Draft map[string]interface{} `json:"draft"`
}

// MessageResponse - plain acknowledgment
type MessageResponse struct {
	Message string `json:"message"`
}

// ReviewResponse - admin review outcome
type ReviewResponse struct {
	Message   string                `json:"message"`
	NewStatus models.CategoryStatus `json:"newStatus"`
}

// PendingRegistration is one admin review queue entry.
// RegistrationData is read from the user's draft under the category
// slug, matching the legacy admin view; it keeps whatever shape the
// draft stored there.
type PendingRegistration struct {
	UserID           int         `json:"userId"`
	Email            string      `json:"email"`
	CategorySlug     string      `json:"categorySlug"`
	RegistrationData interface{} `json:"registrationData"`
	SubmittedAt      *string     `json:"submittedAt"`
}

// PendingResponse - admin review queue
type PendingResponse struct {
	Pending []PendingRegistration `json:"pending"`
}
