package apperrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"

	// Validation
	CodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	CodeInvalidReviewAction ErrorCode = "INVALID_REVIEW_ACTION"
	CodeNotAwaitingApproval ErrorCode = "NOT_AWAITING_APPROVAL"

	// Resources
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeCategoryNotFound     ErrorCode = "CATEGORY_NOT_FOUND"
	CodeRegistrationNotFound ErrorCode = "REGISTRATION_NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists     ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeCategoryAlreadyApplied ErrorCode = "CATEGORY_ALREADY_APPLIED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"
)
