package services

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/logger"

	"go.uber.org/zap"
)

// WebhookService delivers events to the n8n automation platform.
// Delivery is best-effort: a failed call is logged and swallowed, it
// never fails the domain operation that produced the event.
type WebhookService struct {
	client          *http.Client
	mealPlanURL     string
	notificationURL string
}

func NewWebhookService() *WebhookService {
	return &WebhookService{
		client:          &http.Client{Timeout: 10 * time.Second},
		mealPlanURL:     os.Getenv("N8N_WEBHOOK_URL"),
		notificationURL: os.Getenv("N8N_NOTIFICATION_WEBHOOK_URL"),
	}
}

// TriggerMealPlanUpdated announces a plan change so n8n can refresh the
// auto-generated shopping list.
func (s *WebhookService) TriggerMealPlanUpdated(weekID, householdID uint) bool {
	if s.mealPlanURL == "" {
		logger.Warn("N8N_WEBHOOK_URL not configured, skipping meal plan trigger")
		return false
	}
	return s.send(s.mealPlanURL, map[string]interface{}{
		"event":        "meal_plan_updated",
		"week_id":      weekID,
		"household_id": householdID,
		"timestamp":    time.Now().Format(time.RFC3339),
	}, "meal_plan")
}

type NotificationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendNotification forwards a generic notification (email, telegram,
// slack) through n8n. This is the one path whose transport outcome is
// surfaced to the caller.
func (s *WebhookService) SendNotification(data map[string]interface{}) NotificationResult {
	if s.notificationURL == "" {
		logger.Error("N8N_NOTIFICATION_WEBHOOK_URL not configured")
		return NotificationResult{Success: false, Message: "n8n webhook URL not configured"}
	}
	ok := s.send(s.notificationURL, data, "notification")
	if ok {
		return NotificationResult{Success: true, Message: "Notification sent successfully"}
	}
	return NotificationResult{Success: false, Message: "Failed to send notification"}
}

// SendExpiringItemsEmail hands the expiring-items digest to n8n for
// email delivery.
func (s *WebhookService) SendExpiringItemsEmail(emailData map[string]interface{}) NotificationResult {
	if s.notificationURL == "" {
		logger.Error("N8N_NOTIFICATION_WEBHOOK_URL not configured for expiring items email")
		return NotificationResult{Success: false, Message: "n8n webhook URL not configured"}
	}

	payload := map[string]interface{}{
		"event":     "expiring_items_email",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	for k, v := range emailData {
		payload[k] = v
	}

	ok := s.send(s.notificationURL, payload, "expiring_items_email")
	if ok {
		return NotificationResult{Success: true, Message: "Email sent successfully"}
	}
	return NotificationResult{Success: false, Message: "Failed to send email"}
}

func (s *WebhookService) send(url string, data map[string]interface{}, kind string) bool {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error("n8n webhook marshal failed", zap.String("type", kind), zap.Error(err))
		return false
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logger.Error("n8n webhook request build failed", zap.String("type", kind), zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "HomeLife-API/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Error("n8n webhook connection error",
			zap.String("type", kind), zap.String("url", url), zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		logger.Info("n8n webhook triggered",
			zap.String("type", kind), zap.Int("status", resp.StatusCode))
		return true
	}

	logger.Warn("n8n webhook failed",
		zap.String("type", kind), zap.String("url", url), zap.Int("status", resp.StatusCode))
	return false
}

// ValidateSecret checks an incoming webhook secret in constant time.
// When no secret is configured, validation passes outside production.
func (s *WebhookService) ValidateSecret(provided string) bool {
	expected := os.Getenv("N8N_WEBHOOK_SECRET")
	if expected == "" {
		return os.Getenv("APP_ENV") != "production"
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
