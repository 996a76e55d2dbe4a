package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/lecturedeck/internal/errors"
)

func TestHasCode(t *testing.T) {
	err := errors.NewInsufficientYieldError("mcqs", 9, 10)
	wrapped := fmt.Errorf("generate: %w", err)

	assert.True(t, errors.HasCode(err, errors.ErrCodeInsufficientYield))
	assert.True(t, errors.HasCode(wrapped, errors.ErrCodeInsufficientYield))
	assert.False(t, errors.HasCode(wrapped, errors.ErrCodeUngroundedContent))
	assert.False(t, errors.HasCode(stderrors.New("plain"), errors.ErrCodeInternal))
}

func TestStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    *errors.AppError
		status int
	}{
		{"not found", errors.NewNotFoundError("set", 1), 404},
		{"validation", errors.NewValidationError("count", "must be positive"), 400},
		{"ungrounded", errors.NewUngroundedContentError("flashcards"), 422},
		{"insufficient", errors.NewInsufficientYieldError("flashcards", 1, 2), 422},
		{"provider", errors.NewProviderFailureError(stderrors.New("boom")), 502},
		{"rating", errors.NewInvalidRatingError(7), 400},
		{"internal", errors.NewInternalError(stderrors.New("db")), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.NewProviderFailureError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "PROVIDER_FAILURE")
	assert.Contains(t, err.Error(), "connection refused")
}
