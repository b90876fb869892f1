package controllers

import (
	"net/http"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

func newNutritionService() *services.NutritionService {
	return services.NewNutritionService(config.DB, services.NewRecipeService(config.DB))
}

func GetRecipeNutrition(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	nutrition, err := newNutritionService().GetRecipeNutrition(id, c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, nutrition)
}

func GetWeeklyNutrition(c *gin.Context) {
	id, ok := pathID(c, "weekId")
	if !ok {
		respondFailure(c, http.StatusBadRequest, "")
		return
	}

	nutrition, err := newNutritionService().GetWeeklyNutrition(id, c.GetUint("householdID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, nutrition)
}
