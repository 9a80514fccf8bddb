package cli

import (
	"fmt"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

// classify names the kind of API failure for the user.
func classify(err error) string {
	switch {
	case google.IsUnauthorized(err):
		return "unauthorised, check --credentials or --token"
	case google.IsForbidden(err):
		return "forbidden, the credentials lack a required scope or permission"
	case google.IsNotFound(err):
		return "not found"
	case google.IsConflict(err):
		return "conflict"
	case google.IsRateLimited(err):
		return "rate limited, retry later"
	case google.IsGone(err):
		return "gone, the page or sync token has expired"
	default:
		return ""
	}
}

// apiError wraps err from the named operation with its classification.
func apiError(op string, err error) error {
	if class := classify(err); class != "" {
		return fmt.Errorf("%s failed (%s): %w", op, class, err)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
