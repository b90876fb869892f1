package controllers

import (
	"net/http"
	"strconv"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

// GetIngredients is reachable without auth; the household scope comes
// from the query string when the caller is browsing the catalog.
func GetIngredients(c *gin.Context) {
	householdID := c.GetUint("householdID")
	if householdID == 0 {
		if raw := c.Query("household_id"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				householdID = uint(id)
			}
		}
	}

	svc := services.NewIngredientService(config.DB)
	ingredients, err := svc.GetAll(householdID, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, ingredients)
}

func GetIngredient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	svc := services.NewIngredientService(config.DB)
	ingredient, err := svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, ingredient)
}

func CreateIngredient(c *gin.Context) {
	var body struct {
		services.IngredientInput
		HouseholdID uint `json:"household_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if body.Name == "" {
		respondFailure(c, http.StatusUnprocessableEntity, "name is required")
		return
	}

	svc := services.NewIngredientService(config.DB)
	ingredient, err := svc.Create(body.HouseholdID, body.IngredientInput)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, ingredient)
}
