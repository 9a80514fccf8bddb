package google

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		check func(error) bool
	}{
		{"unauthorized", http.StatusUnauthorized, IsUnauthorized},
		{"forbidden", http.StatusForbidden, IsForbidden},
		{"not found", http.StatusNotFound, IsNotFound},
		{"conflict", http.StatusConflict, IsConflict},
		{"rate limited", http.StatusTooManyRequests, IsRateLimited},
		{"gone", http.StatusGone, IsGone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gerr := &googleapi.Error{Code: tt.code}
			assert.True(t, tt.check(gerr))
			assert.True(t, tt.check(fmt.Errorf("list files: %w", gerr)))
			assert.True(t, tt.check(WrapError(gerr)))
			assert.False(t, tt.check(&googleapi.Error{Code: http.StatusInternalServerError}))
			assert.False(t, tt.check(errors.New("boom")))
		})
	}
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil))
	assert.Equal(t, ErrNotFound, WrapError(&googleapi.Error{Code: http.StatusNotFound}))
	assert.Equal(t, ErrGone, WrapError(&googleapi.Error{Code: http.StatusGone}))

	plain := errors.New("dial tcp: refused")
	assert.Equal(t, plain, WrapError(plain))

	serverErr := &googleapi.Error{Code: http.StatusBadGateway}
	assert.Equal(t, error(serverErr), WrapError(serverErr))
}
