package google

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Common Google API errors.
var (
	// ErrUnauthorized indicates invalid or expired credentials.
	ErrUnauthorized = errors.New("google: unauthorised (invalid credentials)")

	// ErrForbidden indicates insufficient permissions.
	ErrForbidden = errors.New("google: forbidden (insufficient permissions)")

	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("google: resource not found")

	// ErrConflict indicates the resource already exists or was concurrently modified.
	ErrConflict = errors.New("google: conflict")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("google: rate limit exceeded")

	// ErrGone indicates an expired page or sync token (410 GONE).
	ErrGone = errors.New("google: resource gone")
)

func statusIs(err error, sentinel error, code int) bool {
	if errors.Is(err, sentinel) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == code
	}
	return false
}

// IsUnauthorized returns true if the error indicates invalid credentials.
func IsUnauthorized(err error) bool {
	return statusIs(err, ErrUnauthorized, http.StatusUnauthorized)
}

// IsForbidden returns true if the error indicates insufficient permissions.
func IsForbidden(err error) bool {
	return statusIs(err, ErrForbidden, http.StatusForbidden)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return statusIs(err, ErrNotFound, http.StatusNotFound)
}

// IsConflict returns true if the error indicates a 409 conflict.
func IsConflict(err error) bool {
	return statusIs(err, ErrConflict, http.StatusConflict)
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return statusIs(err, ErrRateLimited, http.StatusTooManyRequests)
}

// IsGone returns true if the error indicates an expired token (410 GONE).
// Drive returns this for stale change page tokens.
func IsGone(err error) bool {
	return statusIs(err, ErrGone, http.StatusGone)
}

// WrapError converts a Google API error to one of the sentinel errors above.
// Errors with other status codes, and non-API errors, are returned unchanged.
// The clients never call this; it is for callers that want coarse handling.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch gerr.Code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusGone:
		return ErrGone
	default:
		return err
	}
}
