package controllers

import (
	"net/http"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/services"
	"github.com/MohammadCZeidan/Server-Homelife/utils"

	"github.com/gin-gonic/gin"
)

// GetWeeklyInsights returns the aggregated dashboard for one week.
// weekStartDate defaults to the start of the current week and is
// normalized either way, so mid-week dates are accepted.
func GetWeeklyInsights(c *gin.Context) {
	weekStart := utils.StartOfWeek(time.Now())
	if raw := c.Query("weekStartDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondFailure(c, http.StatusUnprocessableEntity, "invalid weekStartDate")
			return
		}
		weekStart = utils.StartOfWeek(parsed)
	}

	svc := services.NewInsightsService(config.DB, services.NewAIService(config.DB))
	insights, err := svc.GetWeeklyInsights(c.GetUint("householdID"), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, insights)
}
