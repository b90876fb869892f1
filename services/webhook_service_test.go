package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWebhookService(mealPlanURL, notificationURL string) *WebhookService {
	return &WebhookService{
		client:          &http.Client{Timeout: time.Second},
		mealPlanURL:     mealPlanURL,
		notificationURL: notificationURL,
	}
}

func TestTriggerMealPlanUpdated(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "HomeLife-API/1.0", r.Header.Get("User-Agent"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ok := testWebhookService(srv.URL, "").TriggerMealPlanUpdated(42, 7)
	assert.True(t, ok)
	assert.Equal(t, "meal_plan_updated", received["event"])
	assert.Equal(t, float64(42), received["week_id"])
	assert.Equal(t, float64(7), received["household_id"])
	assert.NotEmpty(t, received["timestamp"])
}

func TestTriggerMealPlanUpdatedUnconfigured(t *testing.T) {
	ok := testWebhookService("", "").TriggerMealPlanUpdated(1, 1)
	assert.False(t, ok)
}

func TestSendNotification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	result := testWebhookService("", srv.URL).SendNotification(map[string]interface{}{
		"message": "hello",
	})
	assert.True(t, result.Success)
	assert.Equal(t, "Notification sent successfully", result.Message)
}

func TestSendNotificationServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := testWebhookService("", srv.URL).SendNotification(map[string]interface{}{})
	assert.False(t, result.Success)
}

func TestSendNotificationUnreachable(t *testing.T) {
	// closed server, connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	result := testWebhookService("", url).SendNotification(map[string]interface{}{})
	assert.False(t, result.Success)
}

func TestSendExpiringItemsEmail(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	result := testWebhookService("", srv.URL).SendExpiringItemsEmail(map[string]interface{}{
		"recipient_email": "family@example.com",
		"items":           []string{"Milk (expires in 1 day)"},
	})
	assert.True(t, result.Success)
	assert.Equal(t, "expiring_items_email", received["event"])
	assert.Equal(t, "family@example.com", received["recipient_email"])
}

func TestValidateSecret(t *testing.T) {
	svc := testWebhookService("", "")

	t.Setenv("N8N_WEBHOOK_SECRET", "s3cret")
	assert.True(t, svc.ValidateSecret("s3cret"))
	assert.False(t, svc.ValidateSecret("wrong"))
	assert.False(t, svc.ValidateSecret(""))

	t.Setenv("N8N_WEBHOOK_SECRET", "")
	t.Setenv("APP_ENV", "local")
	assert.True(t, svc.ValidateSecret("anything"))

	t.Setenv("APP_ENV", "production")
	assert.False(t, svc.ValidateSecret("anything"))
}
