package controllers

import (
	"net/http"
	"strconv"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/models"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

func GetPantry(c *gin.Context) {
	svc := services.NewPantryService(config.DB)
	items, err := svc.GetAll(c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, items)
}

func CreatePantryItem(c *gin.Context) {
	var body services.PantryInput
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewPantryService(config.DB)
	item, err := svc.Create(c.GetUint("householdID"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, item)
}

func UpdatePantryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	var body services.PantryUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewPantryService(config.DB)
	item, err := svc.Update(id, c.GetUint("householdID"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, item)
}

func UpdatePantryExpiry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	var in services.PantryUpdate
	if err := c.ShouldBindJSON(&in); err != nil || in.ExpiryDate == nil {
		respondFailure(c, http.StatusUnprocessableEntity, "expiry_date is required")
		return
	}

	svc := services.NewPantryService(config.DB)
	item, err := svc.Update(id, c.GetUint("householdID"), services.PantryUpdate{ExpiryDate: in.ExpiryDate})
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, item)
}

func DeletePantryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := services.NewPantryService(config.DB)
	if err := svc.Delete(id, c.GetUint("householdID")); err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, nil)
}

func ConsumePantryItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	var body struct {
		Quantity *float64 `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewPantryService(config.DB)
	result, err := svc.Consume(id, c.GetUint("householdID"), *body.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	if result.Deleted {
		respondSuccess(c, nil)
		return
	}
	respondSuccess(c, result.Item)
}

func GetExpiringSoon(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 0 {
		days = 7
	}

	svc := services.NewPantryService(config.DB)
	items, err := svc.GetExpiringSoon(c.GetUint("householdID"), days)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, items)
}

func MergePantryDuplicates(c *gin.Context) {
	svc := services.NewPantryService(config.DB)
	result, err := svc.MergeDuplicates(c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, result)
}

// SendExpiringItemsEmail pushes the expiring-items digest to n8n for
// delivery. This endpoint does surface transport failure.
func SendExpiringItemsEmail(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 0 {
		days = 7
	}

	var user models.User
	if err := config.DB.First(&user, c.GetUint("userID")).Error; err != nil {
		respondError(c, err)
		return
	}

	pantrySvc := services.NewPantryService(config.DB)
	items, err := pantrySvc.GetExpiringSoon(c.GetUint("householdID"), days)
	if err != nil {
		respondError(c, err)
		return
	}

	formatted := make([]gin.H, 0, len(items))
	for _, it := range items {
		unitName := it.Unit.Name
		if unitName == "" {
			unitName = "unit"
		}
		formatted = append(formatted, gin.H{
			"id":                it.ID,
			"ingredient_name":   it.Ingredient.Name,
			"quantity":          it.Quantity,
			"unit":              unitName,
			"expiry_date":       it.ExpiryDate.Format("2006-01-02"),
			"days_until_expiry": it.DaysUntilExpiry,
			"location":          it.Location,
		})
	}

	webhookSvc := services.NewWebhookService()
	result := webhookSvc.SendExpiringItemsEmail(map[string]interface{}{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
		"household_id":     c.GetUint("householdID"),
		"recipient_emails": []string{user.Email},
		"expiring_items":   formatted,
		"days":             days,
		"subject":          "Items Expiring Soon - HomeLife",
	})
	if !result.Success {
		respondFailure(c, http.StatusInternalServerError, result.Message)
		return
	}
	respondSuccess(c, gin.H{
		"message":     result.Message,
		"items_count": len(formatted),
		"recipients":  []string{user.Email},
	})
}
