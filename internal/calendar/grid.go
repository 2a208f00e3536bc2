package calendar

import (
	"time"

	"github.com/AminElhag/Elixir/internal/booking"
)

// Cell is one entry in the month grid: either padding before the first
// day of the month, or a calendar date with its bookings and the
// precedence-derived status.
type Cell struct {
	Empty    bool              `json:"empty"`
	Date     *booking.Date     `json:"date,omitempty"`
	Day      int               `json:"day,omitempty"`
	Bookings []booking.Booking `json:"bookings,omitempty"`
	Status   booking.Status    `json:"status,omitempty"`
	Color    string            `json:"color,omitempty"`
}

// DaysOfWeek is the grid header, week starting Sunday.
var DaysOfWeek = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.January, time.March, time.May, time.July,
		time.August, time.October, time.December:
		return 31
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 31
}

// FirstWeekdayIndex returns the weekday of the 1st of the month with
// Sunday normalized to 0.
func FirstWeekdayIndex(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// BuildMonthGrid lays out one month as a flat cell sequence: leading
// padding cells up to the first weekday, then one cell per day annotated
// with that day's bookings.
func BuildMonthGrid(year int, month time.Month, bookings []booking.Booking) []Cell {
	firstWeekday := FirstWeekdayIndex(year, month)
	days := DaysInMonth(year, month)

	cells := make([]Cell, 0, firstWeekday+days)
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, Cell{Empty: true})
	}

	for day := 1; day <= days; day++ {
		date := booking.NewDate(year, month, day)
		dayBookings := BookingsOnDate(date, bookings)

		cell := Cell{
			Date:     &date,
			Day:      day,
			Bookings: dayBookings,
		}
		if status, ok := DayStatus(dayBookings); ok {
			cell.Status = status
			cell.Color = status.Color()
		}
		cells = append(cells, cell)
	}

	return cells
}

func BookingsOnDate(date booking.Date, bookings []booking.Booking) []booking.Booking {
	var out []booking.Booking
	for _, b := range bookings {
		if b.Date.Equal(date) {
			out = append(out, b)
		}
	}
	return out
}

// DayStatus picks one status for a day with mixed bookings: any current
// booking wins, then any upcoming, then cancelled. A day with no
// bookings has no status.
func DayStatus(bookings []booking.Booking) (booking.Status, bool) {
	if len(bookings) == 0 {
		return "", false
	}
	for _, b := range bookings {
		if b.Status == booking.StatusCurrent {
			return booking.StatusCurrent, true
		}
	}
	for _, b := range bookings {
		if b.Status == booking.StatusUpcoming {
			return booking.StatusUpcoming, true
		}
	}
	return booking.StatusCancelled, true
}

// PrevMonth and NextMonth step the focused date by one month,
// preserving the day-of-month where valid and deferring to the standard
// library's rollover rules otherwise.
func PrevMonth(d booking.Date) booking.Date {
	return d.AddMonths(-1)
}

func NextMonth(d booking.Date) booking.Date {
	return d.AddMonths(1)
}
