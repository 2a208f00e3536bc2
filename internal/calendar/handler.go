package calendar

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AminElhag/Elixir/internal/api"
	"github.com/AminElhag/Elixir/internal/booking"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	bookings booking.Service
}

func NewHandler(bookings booking.Service) *Handler {
	return &Handler{bookings: bookings}
}

type MonthGridResponse struct {
	Year       int      `json:"year"`
	Month      int      `json:"month"`
	DaysOfWeek []string `json:"days_of_week"`
	Cells      []Cell   `json:"cells"`
}

// DayResponse tells the client what tapping a day does: an empty day
// starts a new booking pre-filled with that date, a day with bookings
// shows the detail list.
type DayResponse struct {
	Date     booking.Date      `json:"date"`
	Bookings []booking.Booking `json:"bookings"`
	Action   string            `json:"action"`
}

const (
	ActionStartBooking = "start_booking"
	ActionShowDetails  = "show_details"
)

// MonthGrid godoc
// @Summary      Month grid
// @Description  Returns the flat cell sequence for one month: leading padding, then one cell per day with bookings and status.
// @Tags         calendar
// @Produce      json
// @Param        year   path      int  true  "Year"
// @Param        month  path      int  true  "Month (1-12)"
// @Success      200    {object}  MonthGridResponse
// @Failure      400    {object}  api.ErrorResponse
// @Failure      500    {object}  api.ErrorResponse
// @Router       /calendar/{year}/{month} [get]
func (h *Handler) MonthGrid(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid year"})
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid month"})
		return
	}

	all, err := h.bookings.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}

	c.JSON(http.StatusOK, MonthGridResponse{
		Year:       year,
		Month:      month,
		DaysOfWeek: DaysOfWeek,
		Cells:      BuildMonthGrid(year, time.Month(month), all),
	})
}

// Day godoc
// @Summary      Day detail
// @Description  Returns the bookings for one date plus the action a click performs.
// @Tags         calendar
// @Produce      json
// @Param        date  path      string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  DayResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      500   {object}  api.ErrorResponse
// @Router       /calendar/day/{date} [get]
func (h *Handler) Day(c *gin.Context) {
	date, err := booking.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	dayBookings, err := h.bookings.BookingsOnDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}

	action := ActionShowDetails
	if len(dayBookings) == 0 {
		action = ActionStartBooking
		dayBookings = []booking.Booking{}
	}

	c.JSON(http.StatusOK, DayResponse{
		Date:     date,
		Bookings: dayBookings,
		Action:   action,
	})
}
