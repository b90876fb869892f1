package controllers

import (
	"net/http"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

func GetUnits(c *gin.Context) {
	svc := services.NewUnitService(config.DB)
	units, err := svc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, units)
}

func CreateUnit(c *gin.Context) {
	var body struct {
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	svc := services.NewUnitService(config.DB)
	unit, err := svc.Create(body.Name, body.Abbreviation)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, unit)
}
