package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MohammadCZeidan/Server-Homelife/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runRespond(fn func(c *gin.Context)) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body envelope
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRespondSuccess(t *testing.T) {
	w, body := runRespond(func(c *gin.Context) {
		respondSuccess(c, gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body.Status)
	assert.NotNil(t, body.Payload)
	assert.Empty(t, body.Message)
}

func TestRespondErrorNotFound(t *testing.T) {
	w, body := runRespond(func(c *gin.Context) {
		respondError(c, services.ErrNotFound)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "failure", body.Status)
	assert.Empty(t, body.Message)
}

func TestRespondErrorWrappedNotFound(t *testing.T) {
	w, _ := runRespond(func(c *gin.Context) {
		respondError(c, fmt.Errorf("loading week: %w", services.ErrNotFound))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRespondErrorValidation(t *testing.T) {
	w, body := runRespond(func(c *gin.Context) {
		respondError(c, &services.ValidationError{Field: "day", Message: "must be between 0 and 6"})
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, body.Message, "day")
}

func TestRespondErrorInternal(t *testing.T) {
	w, body := runRespond(func(c *gin.Context) {
		respondError(c, errors.New("pq: connection reset"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// internals never leak into the body
	assert.Empty(t, body.Message)
}

func TestPathID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id, ok := pathID(c, "id")
	require.True(t, ok)
	assert.Equal(t, uint(42), id)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, ok = pathID(c, "id")
	assert.False(t, ok)
}
