package booking

import (
	"errors"
	"time"

	"github.com/AminElhag/Elixir/internal/trainer"

	"github.com/google/uuid"
)

var (
	ErrNoTrainer       = errors.New("no trainer selected")
	ErrNoDate          = errors.New("no date selected")
	ErrNoTime          = errors.New("no time selected")
	ErrNoType          = errors.New("no training type selected")
	ErrPastDate        = errors.New("cannot book a date in the past")
	ErrInvalidTimeSlot = errors.New("time is not an available slot")
	ErrUnknownType     = errors.New("training type is not offered by this trainer")
)

// AvailableTimes is the fixed set of bookable slots. It is not derived
// from trainer availability.
var AvailableTimes = []string{
	"09:00", "10:00", "11:00",
	"14:00", "15:00", "16:00",
	"17:00", "18:00", "19:00",
}

func IsAvailableTime(slot string) bool {
	for _, t := range AvailableTimes {
		if t == slot {
			return true
		}
	}
	return false
}

// todayFn is swapped out in tests to pin "today".
var todayFn = Today

// Draft is the transient wizard state accumulated across the booking
// screens: trainer, then date, then time, then training type. Each step
// returns a new value, so abandoning a draft at any point has no side
// effects. Only Confirm converts it into a committed Booking.
type Draft struct {
	trainer      *trainer.Trainer
	date         *Date
	timeSlot     string
	trainingType *trainer.TrainingType
}

// StartBooking opens a draft for the given trainer. A preset date (deep
// link from an empty calendar day) pre-fills the date step, subject to
// the same past-date guard.
func StartBooking(t *trainer.Trainer, presetDate *Date) (Draft, error) {
	if t == nil {
		return Draft{}, ErrNoTrainer
	}
	d := Draft{trainer: t}
	if presetDate != nil {
		return d.ChooseDate(*presetDate)
	}
	return d, nil
}

func (d Draft) ChooseDate(date Date) (Draft, error) {
	if d.trainer == nil {
		return d, ErrNoTrainer
	}
	if date.Before(todayFn()) {
		return d, ErrPastDate
	}
	d.date = &date
	return d, nil
}

func (d Draft) ChooseTime(slot string) (Draft, error) {
	if d.trainer == nil {
		return d, ErrNoTrainer
	}
	if d.date == nil {
		return d, ErrNoDate
	}
	if !IsAvailableTime(slot) {
		return d, ErrInvalidTimeSlot
	}
	d.timeSlot = slot
	return d, nil
}

func (d Draft) ChooseType(tt trainer.TrainingType) (Draft, error) {
	if d.trainer == nil {
		return d, ErrNoTrainer
	}
	if d.date == nil {
		return d, ErrNoDate
	}
	if d.timeSlot == "" {
		return d, ErrNoTime
	}
	if _, ok := d.trainer.TrainingTypeByID(tt.ID); !ok {
		return d, ErrUnknownType
	}
	d.trainingType = &tt
	return d, nil
}

// Confirm requires the full selection and re-checks the date guard; the
// picker constrains input but commit is the authority. The produced
// booking's status is derived from the date relative to today.
func (d Draft) Confirm() (*Booking, error) {
	if d.trainer == nil {
		return nil, ErrNoTrainer
	}
	if d.date == nil {
		return nil, ErrNoDate
	}
	if d.timeSlot == "" {
		return nil, ErrNoTime
	}
	if d.trainingType == nil {
		return nil, ErrNoType
	}

	today := todayFn()
	if d.date.Before(today) {
		return nil, ErrPastDate
	}

	return &Booking{
		ID:              uuid.NewString(),
		TrainerID:       d.trainer.ID,
		TrainerName:     d.trainer.Name,
		TrainerPhotoURL: d.trainer.PhotoURL,
		Date:            *d.date,
		Time:            d.timeSlot,
		Status:          DeriveStatus(*d.date, today),
		SessionType:     d.trainingType.Name,
		Duration:        d.trainingType.Duration,
		CreatedAt:       time.Now(),
	}, nil
}
