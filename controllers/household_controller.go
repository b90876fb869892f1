package controllers

import (
	"net/http"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/models"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

func GetHousehold(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.GetUint("userID")).Error; err != nil {
		respondError(c, err)
		return
	}
	if user.HouseholdID == nil {
		respondSuccess(c, nil)
		return
	}

	svc := services.NewHouseholdService(config.DB)
	household, err := svc.Get(*user.HouseholdID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, household)
}

func CreateHousehold(c *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewHouseholdService(config.DB)
	household, err := svc.Create(c.GetUint("userID"), body.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, household)
}

func JoinHousehold(c *gin.Context) {
	var body struct {
		InviteCode string `json:"invite_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewHouseholdService(config.DB)
	household, err := svc.Join(c.GetUint("userID"), body.InviteCode)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, household)
}

func GenerateInvite(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.GetUint("userID")).Error; err != nil {
		respondError(c, err)
		return
	}
	if user.HouseholdID == nil {
		respondFailure(c, http.StatusBadRequest, "User must belong to a household")
		return
	}

	svc := services.NewHouseholdService(config.DB)
	code, err := svc.GenerateInvite(*user.HouseholdID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, gin.H{"invite_code": code})
}
