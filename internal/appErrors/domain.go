package appErrors

import (
	"net/http"
)

// Factories for wrapping repository errors and predefined variables for the
// static business errors of the portal.

// ErrNotFound converts a repository "record not found" into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus reports an operation attempted in the wrong lifecycle state.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// --- Auth ---

var ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email/student ID or password", http.StatusUnauthorized)

var ErrInvalidToken = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)

var ErrInsufficientPermissions = New(CodeForbidden, "auth", "Insufficient permissions", http.StatusForbidden)

var ErrInvalidOTP = New(CodeInvalidOTP, "auth", "Incorrect or expired OTP", http.StatusUnauthorized)

// --- Users ---

var ErrUserNotFound = New(CodeNotFound, "user", "User not found", http.StatusNotFound)

var ErrAccountAlreadyExists = New(CodeAlreadyExists, "user", "An account with this email or student ID already exists", http.StatusConflict)

var ErrWeakPassword = New(CodeValidationFailed, "user", "Password must be at least 6 characters", http.StatusBadRequest)

// --- Jobs ---

var ErrJobNotFound = New(CodeNotFound, "job", "Job not found", http.StatusNotFound)

var ErrJobNotOpen = New(CodeInvalidStatus, "job", "This job is no longer available", http.StatusConflict)

// --- Applications ---

var ErrApplicationNotFound = New(CodeNotFound, "application", "Application not found", http.StatusNotFound)

// ErrActiveApplicationExists enforces the one-active-application rule.
var ErrActiveApplicationExists = New(
	CodeConflict,
	"application",
	"You already have an active application. You can only apply for one job at a time",
	http.StatusConflict,
)

// ErrNoVacancies covers both the capacity pre-check and the guarded
// decrement losing the race for the last slot.
var ErrNoVacancies = New(
	CodeCapacityExceeded,
	"application",
	"Sorry, no vacancies are available for this job",
	http.StatusConflict,
)

var ErrNotApplicationOwner = New(CodeForbidden, "application", "This application belongs to another student", http.StatusForbidden)

var ErrApplicationNotEditable = New(
	CodeInvalidStatus,
	"application",
	"This application cannot be modified right now",
	http.StatusConflict,
)

// ErrApplicationNotAssessable guards assessment of applications that
// have no submitted documents yet.
var ErrApplicationNotAssessable = New(
	CodeInvalidStatus,
	"application",
	"Only submitted applications can be assessed",
	http.StatusConflict,
)

// --- Uploads ---

var ErrMissingUploadFiles = New(CodeValidationFailed, "upload", "Please upload both resume and photo", http.StatusBadRequest)

var ErrInvalidResumeType = New(CodeValidationFailed, "upload", "Resume must be a PDF or Word file", http.StatusUnsupportedMediaType)

var ErrInvalidPhotoType = New(CodeValidationFailed, "upload", "Photo must be JPG or PNG", http.StatusUnsupportedMediaType)

var ErrFileTooLarge = New(CodeValidationFailed, "upload", "File size exceeds the allowed limit", http.StatusRequestEntityTooLarge)
