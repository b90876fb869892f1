package controllers

import (
	"net/http"

	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

var notificationChannels = map[string]bool{
	"email":    true,
	"telegram": true,
	"slack":    true,
}

// SendNotification relays a generic notification through the n8n
// workflow. Automation callers authenticate with the shared webhook
// secret; the webhook outcome is surfaced directly so callers can tell
// a delivery failure from a validation one.
func SendNotification(c *gin.Context) {
	svc := services.NewWebhookService()
	if !svc.ValidateSecret(c.GetHeader("X-Webhook-Secret")) {
		respondFailure(c, http.StatusUnauthorized, "invalid webhook secret")
		return
	}

	var body struct {
		HouseholdID string   `json:"household_id" binding:"required"`
		Channels    []string `json:"channels" binding:"required"`
		Message     string   `json:"message" binding:"required"`
		Subject     string   `json:"subject"`
		SenderEmail string   `json:"sender_email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if len(body.Channels) == 0 {
		respondFailure(c, http.StatusUnprocessableEntity, "at least one channel is required")
		return
	}
	for _, channel := range body.Channels {
		if !notificationChannels[channel] {
			respondFailure(c, http.StatusUnprocessableEntity, "unsupported channel: "+channel)
			return
		}
	}

	subject := body.Subject
	if subject == "" {
		subject = "HomeLife Notification"
	}

	result := svc.SendNotification(map[string]interface{}{
		"household_id": body.HouseholdID,
		"channels":     body.Channels,
		"message":      body.Message,
		"subject":      subject,
		"sender_email": body.SenderEmail,
	})

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	c.JSON(status, result)
}
