package model_test

import (
	"encoding/json"
	"testing"

	"hotel/internal/domains/guest/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGuest_RoundTrip(t *testing.T) {
	guest := model.Guest{
		GuestID: "9f8e7d6c",
		Name:    "Alice Smith",
		Phone:   "555-0100",
		Email:   "alice@example.com",
		Address: "1 Main St",
	}

	raw, err := json.Marshal(guest)
	require.NoError(t, err)
	assert.JSONEq(t, `{"guest_id":"9f8e7d6c","name":"Alice Smith","phone":"555-0100","email":"alice@example.com","address":"1 Main St"}`, string(raw))

	var fromJSON model.Guest
	require.NoError(t, json.Unmarshal(raw, &fromJSON))
	assert.Equal(t, guest, fromJSON)

	raw, err = yaml.Marshal(guest)
	require.NoError(t, err)

	var fromYAML model.Guest
	require.NoError(t, yaml.Unmarshal(raw, &fromYAML))
	assert.Equal(t, guest, fromYAML)
}
