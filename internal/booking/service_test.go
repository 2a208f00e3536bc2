package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) CreateBooking(ctx context.Context, b Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepo) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) ListBookings(ctx context.Context) ([]Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) ListBookingsByDate(ctx context.Context, date Date) ([]Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) CancelBooking(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBookingRepo) HasBookings(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func TestServiceListBookings(t *testing.T) {
	today := NewDate(2024, time.November, 1)
	pinToday(t, today)

	t.Run("Statuses are normalized against today", func(t *testing.T) {
		repo := new(MockBookingRepo)
		repo.On("ListBookings", mock.Anything).Return([]Booking{
			{ID: "1", Date: today, Status: StatusUpcoming},
			{ID: "2", Date: today.AddDays(3), Status: StatusUpcoming},
			{ID: "3", Date: today, Status: StatusCancelled},
		}, nil)

		svc := NewService(repo)

		bookings, err := svc.ListBookings(context.Background())

		require.NoError(t, err)
		require.Len(t, bookings, 3)
		assert.Equal(t, StatusCurrent, bookings[0].Status)
		assert.Equal(t, StatusUpcoming, bookings[1].Status)
		assert.Equal(t, StatusCancelled, bookings[2].Status)
	})

	t.Run("Repository error propagates", func(t *testing.T) {
		repo := new(MockBookingRepo)
		repo.On("ListBookings", mock.Anything).Return(nil, errors.New("db down"))

		svc := NewService(repo)

		_, err := svc.ListBookings(context.Background())
		assert.Error(t, err)
	})
}

func TestServiceBookingsOnDate(t *testing.T) {
	today := NewDate(2024, time.November, 1)
	pinToday(t, today)

	repo := new(MockBookingRepo)
	repo.On("ListBookingsByDate", mock.Anything, today).Return([]Booking{
		{ID: "1", Date: today, Status: StatusUpcoming},
	}, nil)

	svc := NewService(repo)

	bookings, err := svc.BookingsOnDate(context.Background(), today)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, StatusCurrent, bookings[0].Status)
}

func TestServiceCancelBooking(t *testing.T) {
	t.Run("Successfully cancel", func(t *testing.T) {
		repo := new(MockBookingRepo)
		repo.On("CancelBooking", mock.Anything, "b1").Return(nil)

		svc := NewService(repo)

		assert.NoError(t, svc.CancelBooking(context.Background(), "b1"))
	})

	t.Run("Missing or already cancelled maps to not found", func(t *testing.T) {
		repo := new(MockBookingRepo)
		repo.On("CancelBooking", mock.Anything, "b1").Return(ErrBookingNotFoundOrAlreadyCancelled)

		svc := NewService(repo)

		err := svc.CancelBooking(context.Background(), "b1")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestServiceSeed(t *testing.T) {
	today := NewDate(2024, time.November, 1)
	pinToday(t, today)

	t.Run("Seeds on empty database", func(t *testing.T) {
		repo := new(MockBookingRepo)
		repo.On("HasBookings", mock.Anything).Return(false, nil)
		repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("booking.Booking")).Return(nil).Times(7)

		svc := NewService(repo)

		require.NoError(t, svc.Seed(context.Background()))
		repo.AssertExpectations(t)
	})

	t.Run("Skips when bookings exist", func(t *testing.T) {
		repo := new(MockBookingRepo)
		repo.On("HasBookings", mock.Anything).Return(true, nil)

		svc := NewService(repo)

		require.NoError(t, svc.Seed(context.Background()))
		repo.AssertNotCalled(t, "CreateBooking")
	})

	t.Run("Stops on insert error", func(t *testing.T) {
		repo := new(MockBookingRepo)
		repo.On("HasBookings", mock.Anything).Return(false, nil)
		repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("booking.Booking")).Return(errors.New("constraint"))

		svc := NewService(repo)

		assert.Error(t, svc.Seed(context.Background()))
	})
}
