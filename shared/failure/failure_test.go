package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "check_out must be after check_in",
	}

	assert.Equal(t, "check_out must be after check_in", f.Error())
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("invalid check_in date"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "invalid check_in date"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				assert.NoError(t, result)

				return
			}

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestInternalError(t *testing.T) {
	assert.NoError(t, failure.InternalError(nil))

	err := failure.InternalError(errors.New("disk full"))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, "disk full", err.Error())
}

func TestNotFound(t *testing.T) {
	err := failure.NotFound("booking", "1a2b3c4d")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, "booking 1a2b3c4d not found", err.Error())
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		notFound   bool
		badRequest bool
		conflict   bool
	}{
		{
			name:     "not found",
			err:      failure.NotFound("room", "101"),
			notFound: true,
		},
		{
			name:       "bad request",
			err:        failure.BadRequestFromString("invalid date"),
			badRequest: true,
		},
		{
			name:     "conflict",
			err:      failure.Conflict("room 101 is not available"),
			conflict: true,
		},
		{
			name:     "wrapped conflict",
			err:      fmt.Errorf("pay: %w", failure.Conflict("already paid")),
			conflict: true,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, failure.IsNotFound(tt.err))
			assert.Equal(t, tt.badRequest, failure.IsBadRequest(tt.err))
			assert.Equal(t, tt.conflict, failure.IsConflict(tt.err))
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusConflict, Message: "test"},
			expected: http.StatusConflict,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}
