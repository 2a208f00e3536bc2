package booking

import "time"

type Status string

const (
	// StatusCurrent marks a booking whose date is today.
	StatusCurrent Status = "current"
	// StatusUpcoming marks a booking dated in the future.
	StatusUpcoming Status = "upcoming"
	// StatusCancelled is an explicit terminal state that overrides any
	// date-derived status.
	StatusCancelled Status = "cancelled"
)

// Color returns the legend hex color used by the calendar UI.
func (s Status) Color() string {
	switch s {
	case StatusCurrent:
		return "#4CAF50"
	case StatusUpcoming:
		return "#2196F3"
	case StatusCancelled:
		return "#F44336"
	}
	return ""
}

// DeriveStatus maps a booking date onto its date-derived status: today
// is current, anything later is upcoming. Callers guarantee the date is
// not in the past; cancellation is never derived here.
func DeriveStatus(date, today Date) Status {
	if date.After(today) {
		return StatusUpcoming
	}
	return StatusCurrent
}

// Booking denormalizes trainer name and photo for display so the
// calendar never needs a trainer lookup.
type Booking struct {
	ID              string    `db:"id" json:"id"`
	TrainerID       string    `db:"trainer_id" json:"trainer_id"`
	TrainerName     string    `db:"trainer_name" json:"trainer_name"`
	TrainerPhotoURL string    `db:"trainer_photo_url" json:"trainer_photo_url"`
	Date            Date      `db:"date" json:"date"`
	Time            string    `db:"time" json:"time"`
	Status          Status    `db:"status" json:"status"`
	SessionType     string    `db:"session_type" json:"session_type"`
	Duration        int       `db:"duration" json:"duration"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Normalize re-derives the date-dependent status against today. A stored
// "upcoming" row becomes "current" once its day arrives; cancelled rows
// never change.
func (b Booking) Normalize(today Date) Booking {
	if b.Status == StatusCancelled {
		return b
	}
	if b.Date.Equal(today) {
		b.Status = StatusCurrent
	} else if b.Date.After(today) {
		b.Status = StatusUpcoming
	}
	return b
}
