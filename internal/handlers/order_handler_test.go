package handlers

import (
	"encoding/json"
	"little_lemon/internal/models"
	"little_lemon/internal/services"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawBody(t *testing.T, s string) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(s), &body))
	return body
}

func TestParseOrderPatch(t *testing.T) {
	patch, err := parseOrderPatch(rawBody(t, `{"status":"delivered","delivery_crew":7}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"delivery_crew", "status"}, patch.Fields)
	assert.Equal(t, models.OrderDelivered, patch.Status)
	require.NotNil(t, patch.DeliveryCrew)
	assert.Equal(t, uint(7), *patch.DeliveryCrew)

	patch, err = parseOrderPatch(rawBody(t, `{"delivery_crew":null}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"delivery_crew"}, patch.Fields)
	assert.Nil(t, patch.DeliveryCrew)

	patch, err = parseOrderPatch(rawBody(t, `{"total":"1.00"}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"total"}, patch.Fields)
}

func TestParseOrderPatchRejectsBadValues(t *testing.T) {
	var validation *services.ValidationError

	_, err := parseOrderPatch(rawBody(t, `{"delivery_crew":"carl"}`))
	assert.ErrorAs(t, err, &validation)

	_, err = parseOrderPatch(rawBody(t, `{"status":3}`))
	assert.ErrorAs(t, err, &validation)

	_, err = parseOrderPatch(rawBody(t, `{}`))
	assert.ErrorAs(t, err, &validation)
}
