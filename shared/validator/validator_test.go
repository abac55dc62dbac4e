package validator_test

import (
	"strings"
	"testing"

	"hotel/shared/failure"
	"hotel/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomRequest struct {
	Number string  `json:"number" validate:"required,notblank"`
	Type   string  `json:"type"   validate:"required"`
	Price  float64 `json:"price"  validate:"gt=0"`
}

type stayRequest struct {
	CheckIn  string  `json:"check_in"  validate:"required,date"`
	CheckOut *string `json:"check_out" validate:"omitempty,date"`
	Email    string  `json:"email"     validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    *roomRequest
		message string
	}{
		{
			name: "valid struct",
			data: &roomRequest{Number: "101", Type: "Deluxe", Price: 100},
		},
		{
			name:    "missing number uses json name",
			data:    &roomRequest{Type: "Deluxe", Price: 100},
			message: "number is required",
		},
		{
			name:    "blank number",
			data:    &roomRequest{Number: "   ", Type: "Deluxe", Price: 100},
			message: "number must not be blank",
		},
		{
			name:    "zero price",
			data:    &roomRequest{Number: "101", Type: "Deluxe"},
			message: "price must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, failure.IsBadRequest(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name: "valid body",
			body: `{"check_in":"2024-06-01","check_out":"2024-06-04"}`,
		},
		{
			name:    "malformed check in",
			body:    `{"check_in":"01/06/2024"}`,
			message: "invalid check_in date, expected YYYY-MM-DD",
		},
		{
			name:    "malformed optional check out",
			body:    `{"check_in":"2024-06-01","check_out":"tomorrow"}`,
			message: "invalid check_out date, expected YYYY-MM-DD",
		},
		{
			name:    "invalid email",
			body:    `{"check_in":"2024-06-01","email":"nope"}`,
			message: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req stayRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidate_DecodeError(t *testing.T) {
	var req stayRequest

	err := validator.Validate(strings.NewReader(`{"check_in":`), &req)

	require.Error(t, err)
	assert.True(t, failure.IsBadRequest(err))
	assert.Contains(t, err.Error(), "failed to decode request body")
}
