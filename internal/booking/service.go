package booking

import (
	"context"
	"fmt"
)

type Service interface {
	// ListBookings returns all bookings with their date-derived status
	// normalized against today.
	ListBookings(ctx context.Context) ([]Booking, error)
	BookingsOnDate(ctx context.Context, date Date) ([]Booking, error)
	// CreateBooking persists a confirmed wizard booking durably.
	CreateBooking(ctx context.Context, b Booking) error
	CancelBooking(ctx context.Context, id string) error
	// Seed inserts the sample booking set on first run only.
	Seed(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListBookings(ctx context.Context) ([]Booking, error) {
	bookings, err := s.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeAll(bookings), nil
}

func (s *service) BookingsOnDate(ctx context.Context, date Date) ([]Booking, error) {
	bookings, err := s.repo.ListBookingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return normalizeAll(bookings), nil
}

func (s *service) CreateBooking(ctx context.Context, b Booking) error {
	return s.repo.CreateBooking(ctx, b)
}

func (s *service) CancelBooking(ctx context.Context, id string) error {
	err := s.repo.CancelBooking(ctx, id)
	if err == ErrBookingNotFoundOrAlreadyCancelled {
		return ErrBookingNotFound
	}
	return err
}

func (s *service) Seed(ctx context.Context) error {
	has, err := s.repo.HasBookings(ctx)
	if err != nil {
		return fmt.Errorf("failed to check bookings: %w", err)
	}
	if has {
		return nil
	}

	for _, b := range SampleBookings(todayFn()) {
		if err := s.repo.CreateBooking(ctx, b); err != nil {
			return fmt.Errorf("failed to seed booking %s: %w", b.ID, err)
		}
	}
	return nil
}

func normalizeAll(bookings []Booking) []Booking {
	today := todayFn()
	out := make([]Booking, len(bookings))
	for i, b := range bookings {
		out[i] = b.Normalize(today)
	}
	return out
}
