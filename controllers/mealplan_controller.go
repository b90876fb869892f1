package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

func newMealPlanService() *services.MealPlanService {
	return services.NewMealPlanService(config.DB, services.NewWebhookService())
}

func GetWeeklyPlan(c *gin.Context) {
	raw := c.Query("weekStartDate")
	if raw == "" {
		raw = c.Query("start_date")
	}

	var weekStart time.Time
	if raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondFailure(c, http.StatusUnprocessableEntity, "invalid start date")
			return
		}
		weekStart = parsed
	}

	svc := newMealPlanService()
	week, err := svc.GetWeeklyPlan(c.GetUint("householdID"), weekStart)
	if err != nil {
		respondError(c, err)
		return
	}
	if week == nil {
		// no plan yet: an empty grid, not a 404
		respondSuccess(c, gin.H{"id": nil, "start_date": raw, "end_date": nil, "meals": []interface{}{}})
		return
	}
	respondSuccess(c, week)
}

func CreateWeeklyPlan(c *gin.Context) {
	var body struct {
		StartDate string `json:"start_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	startDate, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, "invalid start_date")
		return
	}

	svc := newMealPlanService()
	week, err := svc.CreateWeeklyPlan(c.GetUint("householdID"), startDate)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, week)
}

func AddMeal(c *gin.Context) {
	weekID, ok := pathID(c, "weekId")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	// day arrives as 0-6 or a day name like "monday"
	var body struct {
		Day      interface{} `json:"day" binding:"required"`
		Slot     string      `json:"slot"`
		MealType string      `json:"meal_type"`
		RecipeID uint        `json:"recipe_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slot := body.Slot
	if slot == "" {
		slot = body.MealType
	}
	if slot == "" {
		respondFailure(c, http.StatusUnprocessableEntity, "slot is required")
		return
	}

	var dayStr string
	switch v := body.Day.(type) {
	case string:
		dayStr = v
	case float64:
		dayStr = strconv.Itoa(int(v))
	}
	day := services.NormalizeDay(dayStr)
	if day < 0 {
		respondFailure(c, http.StatusUnprocessableEntity, `Day must be 0-6 or a valid day name (e.g., "monday")`)
		return
	}

	svc := newMealPlanService()
	meal, err := svc.AddMeal(weekID, c.GetUint("householdID"), day, slot, body.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, meal)
}

func RemoveMeal(c *gin.Context) {
	weekID, ok := pathID(c, "weekId")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}
	mealID, ok := pathID(c, "mealId")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := newMealPlanService()
	if err := svc.RemoveMeal(weekID, c.GetUint("householdID"), mealID); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, nil)
}
