package booking

import "context"

type Repository interface {
	CreateBooking(ctx context.Context, b Booking) error
	GetBookingByID(ctx context.Context, id string) (*Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	ListBookingsByDate(ctx context.Context, date Date) ([]Booking, error)
	CancelBooking(ctx context.Context, id string) error
	HasBookings(ctx context.Context) (bool, error)
}
