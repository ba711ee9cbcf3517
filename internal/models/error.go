package models

// Envelope is the uniform JSON response wrapper returned by every handler.
// Message and Data are omitted when empty so success responses stay small.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Error code constants used in envelope messages and logs
const (
	// General errors
	ErrBadRequest     = "BAD_REQUEST"
	ErrUnauthorized   = "UNAUTHORIZED"
	ErrForbidden      = "FORBIDDEN"
	ErrNotFound       = "NOT_FOUND"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"

	// Auth errors
	ErrMissingCredential = "MISSING_CREDENTIAL"
	ErrInvalidCredential = "INVALID_CREDENTIAL"
	ErrInvalidLogin      = "invalid_credentials"
	ErrDuplicateEmail    = "email_already_registered"

	// Resource errors
	ErrMissingFile      = "FILE_REQUIRED"
	ErrRegistrationData = "REGISTRATION_INVALID_DATA"
)

// OK builds a success envelope carrying data.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failure envelope with a message.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
