package rest_test

import (
	"net/http"
	"testing"

	"backoffice/internal/rest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllTriggers(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/marketing-triggers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var triggers []rest.TriggerResponse
	decodeBody(t, rec, &triggers)

	require.Len(t, triggers, 3)
	assert.Equal(t, "trigger-1", triggers[0].ID)
	assert.Equal(t, "Push", triggers[0].Channel)
	assert.Equal(t, "true", triggers[0].IsActive)
	assert.Equal(t, "45", triggers[0].SentCount)
	assert.Equal(t, "68.50", triggers[0].OpenRate)
	assert.Equal(t, "false", triggers[2].IsActive)
}

func TestGetTriggerByID_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/api/marketing-triggers/no-such-trigger", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Marketing trigger not found", errorMessage(t, rec))
}

func TestCreateTrigger_ZeroesMetrics(t *testing.T) {
	e := newTestServer(t)

	body := `{
		"name": "Промо вихідного дня",
		"triggerType": "Weekend promo",
		"conditions": "Субота або неділя",
		"messageTemplate": "Знижка 10% на всі замовлення у вихідні!",
		"channel": "SMS",
		"isActive": "true",
		"sentCount": "999",
		"openRate": "99.90"
	}`
	rec := doRequest(t, e, http.MethodPost, "/api/marketing-triggers", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created rest.TriggerResponse
	decodeBody(t, rec, &created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "SMS", created.Channel)
	assert.Equal(t, "true", created.IsActive)
	// metric fields are server-owned; client values are discarded
	assert.Equal(t, "0", created.SentCount)
	assert.Equal(t, "0.00", created.OpenRate)
	assert.Equal(t, "0.00", created.ClickRate)
	assert.Equal(t, "0.00", created.ConversionRate)
}

func TestCreateTrigger_DefaultsToActive(t *testing.T) {
	e := newTestServer(t)

	body := `{
		"name": "Тест",
		"triggerType": "New user",
		"conditions": "Перше замовлення",
		"messageTemplate": "Вітаємо!",
		"channel": "Push"
	}`
	rec := doRequest(t, e, http.MethodPost, "/api/marketing-triggers", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created rest.TriggerResponse
	decodeBody(t, rec, &created)
	assert.Equal(t, "true", created.IsActive)
}

func TestCreateTrigger_RejectsUnknownChannel(t *testing.T) {
	e := newTestServer(t)

	body := `{
		"name": "Тест",
		"triggerType": "New user",
		"conditions": "Перше замовлення",
		"messageTemplate": "Вітаємо!",
		"channel": "Email"
	}`
	rec := doRequest(t, e, http.MethodPost, "/api/marketing-triggers", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "Channel")
}

func TestUpdateTrigger_Toggle(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPatch, "/api/marketing-triggers/trigger-3", `{"isActive":"true"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated rest.TriggerResponse
	decodeBody(t, rec, &updated)

	assert.Equal(t, "true", updated.IsActive)
	// everything else survives, including the display metrics
	assert.Equal(t, "Вітання нових користувачів", updated.Name)
	assert.Equal(t, "78", updated.SentCount)
}

func TestUpdateTrigger_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodPatch, "/api/marketing-triggers/no-such-trigger", `{"name":"X"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTrigger_Lifecycle(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(t, e, http.MethodDelete, "/api/marketing-triggers/trigger-2", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, e, http.MethodGet, "/api/marketing-triggers/trigger-2", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	// repeating the delete reports not found
	rec = doRequest(t, e, http.MethodDelete, "/api/marketing-triggers/trigger-2", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var triggers []rest.TriggerResponse
	rec = doRequest(t, e, http.MethodGet, "/api/marketing-triggers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &triggers)
	require.Len(t, triggers, 2)
}
