package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound                   = errors.New("booking not found")
	ErrBookingNotFoundOrAlreadyCancelled = errors.New("booking not found or already cancelled")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, b Booking) error {
	query := `
		INSERT INTO bookings (id, trainer_id, trainer_name, trainer_photo_url, date, time, status, session_type, duration, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.TrainerID, b.TrainerName, b.TrainerPhotoURL,
		b.Date, b.Time, b.Status, b.SessionType, b.Duration, b.CreatedAt,
	)
	return err
}

func (r *repository) GetBookingByID(ctx context.Context, id string) (*Booking, error) {
	query := `
		SELECT id, trainer_id, trainer_name, trainer_photo_url, date, time, status, session_type, duration, created_at
		FROM bookings
		WHERE id = ?
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListBookings(ctx context.Context) ([]Booking, error) {
	query := `
		SELECT id, trainer_id, trainer_name, trainer_photo_url, date, time, status, session_type, duration, created_at
		FROM bookings
		ORDER BY date, time
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListBookingsByDate(ctx context.Context, date Date) ([]Booking, error) {
	query := `
		SELECT id, trainer_id, trainer_name, trainer_photo_url, date, time, status, session_type, duration, created_at
		FROM bookings
		WHERE date = ?
		ORDER BY time
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) CancelBooking(ctx context.Context, id string) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE id = ? AND status != 'cancelled'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFoundOrAlreadyCancelled
	}

	return nil
}

func (r *repository) HasBookings(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM bookings)`)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return exists, err
}
