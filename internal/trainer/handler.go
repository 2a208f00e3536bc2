package trainer

import (
	"net/http"

	"github.com/AminElhag/Elixir/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	provider Provider
}

func NewHandler(provider Provider) *Handler {
	return &Handler{provider: provider}
}

// ListTrainers godoc
// @Summary      List trainers
// @Description  Returns all trainers available for booking.
// @Tags         trainers
// @Produce      json
// @Success      200  {array}  Trainer
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	c.JSON(http.StatusOK, h.provider.ListTrainers())
}

// GetTrainer godoc
// @Summary      Get trainer
// @Description  Returns one trainer with comments and offered training types.
// @Tags         trainers
// @Produce      json
// @Param        trainerID  path      string  true  "Trainer ID"
// @Success      200        {object}  Trainer
// @Failure      404        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID} [get]
func (h *Handler) GetTrainer(c *gin.Context) {
	t, ok := h.provider.GetTrainer(c.Param("trainerID"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}
