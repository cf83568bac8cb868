package errors

import "net/http"

// Error code constants. Errors carry code + params; the frontend handles
// presentation. Backend logs are always in English.

// Submission error codes.
const (
	CodeSubmissionNotFound = "SUBMISSION_NOT_FOUND"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeNotAuthorized      = "NOT_AUTHORIZED"
	CodeStaleState         = "STALE_STATE"
	CodeDuplicateAction    = "DUPLICATE_ACTION"
	CodeDraftOnlyDelete    = "DRAFT_ONLY_DELETE"
)

// Template error codes.
const (
	CodeTemplateNotFound = "TEMPLATE_NOT_FOUND"
	CodeTemplateInvalid  = "TEMPLATE_INVALID"
)

// Document error codes.
const (
	CodeDocumentNotApproved = "DOCUMENT_NOT_APPROVED"
	CodeDocumentRenderFail  = "DOCUMENT_RENDER_FAILED"
)

// Auth error codes.
const (
	CodeAuthFailed        = "AUTH_FAILED"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeTokenInvalid      = "TOKEN_INVALID"
	CodePasswordChangeReq = "PASSWORD_CHANGE_REQUIRED"
)

// Generic request error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeInternalError       = "INTERNAL_ERROR"
)

// Convenience constructors using predefined codes.

// ErrSubmissionNotFoundf creates a submission not found error.
func ErrSubmissionNotFoundf(submissionID string) *AppError {
	return (&AppError{
		Code:       CodeSubmissionNotFound,
		Message:    "submission not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{"submission_id": submissionID})
}

// ErrStaleStatef creates a stale state error carrying the authoritative
// current status so clients can refresh.
func ErrStaleStatef(submissionID, currentStatus string) *AppError {
	return (&AppError{
		Code:       CodeStaleState,
		Message:    "submission is no longer pending approval",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{
		"submission_id": submissionID,
		"status":        currentStatus,
	})
}

// ErrNotAuthorizedf creates an error for an actor outside the assigned
// approver set.
func ErrNotAuthorizedf(submissionID, actorID string) *AppError {
	return (&AppError{
		Code:       CodeNotAuthorized,
		Message:    "actor is not an assigned approver for this submission",
		HTTPStatus: http.StatusForbidden,
	}).WithParams(map[string]interface{}{
		"submission_id": submissionID,
		"actor_id":      actorID,
	})
}

// ErrDuplicateActionf creates the duplicate-approval error. Callers treat it
// as a no-op outcome rather than a crash: retried requests are expected.
func ErrDuplicateActionf(submissionID, actorID string) *AppError {
	return (&AppError{
		Code:       CodeDuplicateAction,
		Message:    "approver has already approved this submission",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{
		"submission_id": submissionID,
		"actor_id":      actorID,
	})
}

// ErrDocumentNotApprovedf creates the render precondition error: only
// approved submissions may be downloaded as the official signed document.
func ErrDocumentNotApprovedf(submissionID, currentStatus string) *AppError {
	return (&AppError{
		Code:       CodeDocumentNotApproved,
		Message:    "only approved submissions can be rendered",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{
		"submission_id": submissionID,
		"status":        currentStatus,
	})
}
