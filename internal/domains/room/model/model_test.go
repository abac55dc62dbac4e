package model_test

import (
	"encoding/json"
	"testing"

	"hotel/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRoom_RoundTrip(t *testing.T) {
	room := model.Room{Number: "101", Type: "Deluxe", Price: 100, IsOccupied: false}

	raw, err := json.Marshal(room)
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":"101","type":"Deluxe","price":100,"is_occupied":false}`, string(raw))

	var fromJSON model.Room
	require.NoError(t, json.Unmarshal(raw, &fromJSON))
	assert.Equal(t, room, fromJSON)

	raw, err = yaml.Marshal(room)
	require.NoError(t, err)

	var fromYAML model.Room
	require.NoError(t, yaml.Unmarshal(raw, &fromYAML))
	assert.Equal(t, room, fromYAML)
}
