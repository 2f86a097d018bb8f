package error

import "errors"

// Identity-boundary errors. Token issuance belongs to the external
// identity service; these cover the validation this application performs.
var (
	// ErrInvalidToken is returned when an access token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no access token accompanies a request.
	ErrMissingToken = errors.New("missing access token")
)

// AuthErrorCode defines error codes for identity-boundary errors.
type AuthErrorCode string

const (
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-030005"
)
