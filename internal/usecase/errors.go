package usecase

import "errors"

// ErrNotAuthenticated is returned when an operation runs without a user
// identity attached to the request.
var ErrNotAuthenticated = errors.New("not authenticated")

// ValidationError blocks an operation locally, before any outbound call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConfigurationError means a required secret or webhook URL is missing. Fatal
// to the single operation, not to the session; never retried.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// UpstreamError wraps a non-success response or network failure from an
// outbound dispatch. Surfaced verbatim; retrying is up to the user.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
