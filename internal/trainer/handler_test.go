package trainer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTrainerRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(NewStaticProvider())
	router.GET("/trainers", h.ListTrainers)
	router.GET("/trainers/:trainerID", h.GetTrainer)
	return router
}

func TestListTrainersEndpoint(t *testing.T) {
	router := setupTrainerRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/trainers", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sarah Johnson")
	assert.Contains(t, w.Body.String(), "training_types")
}

func TestGetTrainerEndpoint(t *testing.T) {
	router := setupTrainerRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/trainers/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "John Smith")
}

func TestGetTrainerEndpointNotFound(t *testing.T) {
	router := setupTrainerRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/trainers/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Trainer not found")
}
