package cli

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/apis/google"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"unauthorised", &googleapi.Error{Code: http.StatusUnauthorized}, "unauthorised, check --credentials or --token"},
		{"forbidden", &googleapi.Error{Code: http.StatusForbidden}, "forbidden, the credentials lack a required scope or permission"},
		{"not found", &googleapi.Error{Code: http.StatusNotFound}, "not found"},
		{"conflict", &googleapi.Error{Code: http.StatusConflict}, "conflict"},
		{"rate limited", &googleapi.Error{Code: http.StatusTooManyRequests}, "rate limited, retry later"},
		{"gone", fmt.Errorf("list: %w", &googleapi.Error{Code: http.StatusGone}), "gone, the page or sync token has expired"},
		{"sentinel", google.ErrNotFound, "not found"},
		{"server error", &googleapi.Error{Code: http.StatusInternalServerError}, ""},
		{"transport", errors.New("connection refused"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.err))
		})
	}
}

func TestAPIError(t *testing.T) {
	gerr := &googleapi.Error{Code: http.StatusNotFound, Message: "missing"}

	err := apiError("get file", gerr)
	assert.ErrorIs(t, err, gerr)
	assert.Contains(t, err.Error(), "get file failed (not found): ")

	err = apiError("get file", errors.New("boom"))
	assert.Equal(t, "get file failed: boom", err.Error())
}
