package controllers

import (
	"net/http"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
)

func Register(c *gin.Context) {
	var body struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	authSvc := services.NewAuthService(config.DB)
	user, err := authSvc.Register(body.Name, body.Email, body.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, user)
}

func Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	authSvc := services.NewAuthService(config.DB)
	user, err := authSvc.Login(body.Email, body.Password)
	if err != nil {
		// wrong email and wrong password read the same
		respondFailure(c, http.StatusUnauthorized, "")
		return
	}
	respondSuccess(c, user)
}

// Logout is stateless with JWTs; the client drops its token.
func Logout(c *gin.Context) {
	respondSuccess(c, nil)
}

func Refresh(c *gin.Context) {
	authSvc := services.NewAuthService(config.DB)
	user, err := authSvc.Refresh(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, user)
}

func Me(c *gin.Context) {
	authSvc := services.NewAuthService(config.DB)
	user, err := authSvc.Me(c.GetUint("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, user)
}

func UpdateProfile(c *gin.Context) {
	var body services.ProfileUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	authSvc := services.NewAuthService(config.DB)
	user, err := authSvc.UpdateProfile(c.GetUint("userID"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, user)
}

func GetAllUsers(c *gin.Context) {
	authSvc := services.NewAuthService(config.DB)
	users, err := authSvc.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, users)
}
