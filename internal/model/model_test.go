package model_test

import (
	"encoding/json"
	"testing"

	"schedulink-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidation(t *testing.T) {
	assert.True(t, model.EventStatusCancelled.IsValid())
	assert.False(t, model.EventStatus("archived").IsValid())

	assert.True(t, model.RegistrationStatusConfirmed.IsValid())
	assert.False(t, model.RegistrationStatus("approved").IsValid())

	assert.True(t, model.NotificationStatusDeclined.IsValid())
	assert.False(t, model.NotificationStatus("cancelled").IsValid())

	assert.True(t, model.ResourceConditionPoor.IsValid())
	assert.False(t, model.ResourceCondition("broken").IsValid())

	assert.True(t, model.ResourceStatusInUse.IsValid())
	assert.False(t, model.ResourceStatus("lost").IsValid())

	assert.True(t, model.UserRoleAdmin.IsValid())
	assert.False(t, model.UserRole("root").IsValid())
}

func TestUserJSONHidesPassword(t *testing.T) {
	data, err := json.Marshal(model.User{ID: 1, Username: "alice", Password: "hash"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "hash")
	assert.NotContains(t, string(data), "password")
}

func TestEventJSONKeepsNulls(t *testing.T) {
	data, err := json.Marshal(model.Event{ID: 1, Title: "Demo Day"})
	require.NoError(t, err)

	assert.Contains(t, string(data), `"description":null`)
	assert.Contains(t, string(data), `"registered_count":0`)
}
