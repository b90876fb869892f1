package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MohammadCZeidan/Server-Homelife/logger"
	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// envelope is the uniform response body: {status, payload, message?}.
type envelope struct {
	Status  string      `json:"status"`
	Payload interface{} `json:"payload"`
	Message string      `json:"message,omitempty"`
}

func respondSuccess(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, envelope{Status: "success", Payload: payload})
}

func respondFailure(c *gin.Context, code int, message string) {
	c.JSON(code, envelope{Status: "failure", Payload: nil, Message: message})
}

// respondError maps the service error taxonomy onto the envelope.
// NotFound always reads the same whether the entity is absent or owned
// by another household. Unexpected errors are logged with context but
// the body carries no internals.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondFailure(c, http.StatusNotFound, "")
	case errors.As(err, &verr):
		respondFailure(c, http.StatusUnprocessableEntity, verr.Error())
	default:
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Uint("household_id", c.GetUint("householdID")),
			zap.Error(err))
		respondFailure(c, http.StatusInternalServerError, "")
	}
}

// pathID parses a numeric path parameter, 0 when malformed.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
