package booking

import (
	"errors"
	"net/http"

	"github.com/AminElhag/Elixir/internal/api"
	"github.com/AminElhag/Elixir/internal/metrics"
	"github.com/AminElhag/Elixir/internal/trainer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service  Service
	trainers trainer.Provider
}

func NewHandler(service Service, trainers trainer.Provider) *Handler {
	return &Handler{service: service, trainers: trainers}
}

// CreateBookingRequest carries one full wizard selection. The server
// replays it through the draft state machine so every guard holds at
// commit time, not just in the picker widgets.
type CreateBookingRequest struct {
	TrainerID      string `json:"trainer_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	TrainingTypeID string `json:"training_type_id" binding:"required"`
}

// ListBookings godoc
// @Summary      List bookings
// @Description  Returns all bookings with date-derived status normalized against today.
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   Booking
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Runs the trainer/date/time/type selection through the booking wizard and persists the result.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking selection"
// @Success      201      {object}  Booking
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	t, ok := h.trainers.GetTrainer(req.TrainerID)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	tt, ok := t.TrainingTypeByID(req.TrainingTypeID)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Training type is not offered by this trainer"})
		return
	}

	draft, err := StartBooking(t, nil)
	if err == nil {
		draft, err = draft.ChooseDate(date)
	}
	if err == nil {
		draft, err = draft.ChooseTime(req.Time)
	}
	if err == nil {
		draft, err = draft.ChooseType(tt)
	}

	var booking *Booking
	if err == nil {
		booking, err = draft.Confirm()
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.service.CreateBooking(c.Request.Context(), *booking); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		return
	}

	metrics.RecordBooking(string(booking.Status))
	c.JSON(http.StatusCreated, booking)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	err := h.service.CancelBooking(c.Request.Context(), c.Param("bookingID"))
	if errors.Is(err, ErrBookingNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}

	metrics.RecordBookingCancellation()
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking cancelled successfully"})
}
