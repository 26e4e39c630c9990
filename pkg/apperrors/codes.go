package apperrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Uniqueness conflicts
	CodeEmailAlreadyInUse ErrorCode = "EMAIL_ALREADY_IN_USE"
	CodeDuplicateField    ErrorCode = "DUPLICATE_FIELD"

	// Resources
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CSV ingestion
	CodeInvalidFileType ErrorCode = "INVALID_FILE_TYPE"
	CodeCSVParseFailed  ErrorCode = "CSV_PARSE_FAILED"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeIOFailure     ErrorCode = "IO_FAILURE"
)
