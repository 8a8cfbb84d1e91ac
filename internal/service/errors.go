package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for both an unknown
	// username and a wrong password, so callers cannot distinguish which
	// factor failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidData is returned when a request body misses a required field
	// or carries a value that cannot be coerced into the expected type.
	ErrInvalidData = errors.New("invalid data provided")

	// ErrTokenIsExpiredOrInvalid is returned by ParseToken for any
	// validation failure: bad signature, wrong issuer, malformed token, or
	// expiry.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
