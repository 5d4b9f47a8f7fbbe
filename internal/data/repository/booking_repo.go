package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"
)

type BookingRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// EnsureSchema creates the bookings table if it does not exist yet.
// Runs once at startup.
func (r *bookingRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS bookings (
			id UUID PRIMARY KEY,
			customer_name TEXT NOT NULL DEFAULT '',
			phone_number TEXT NOT NULL DEFAULT '',
			room_type TEXT NOT NULL DEFAULT '',
			check_in_date TEXT NOT NULL DEFAULT '',
			check_out_date TEXT NOT NULL DEFAULT '',
			amount_paid NUMERIC NOT NULL DEFAULT 0,
			payment_method TEXT NOT NULL DEFAULT '',
			transaction_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		r.log.Error("Failed to ensure bookings schema", zap.Error(err))
		return fmt.Errorf("ensure bookings schema: %w", err)
	}

	return nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, customer_name, phone_number, room_type, check_in_date, check_out_date, amount_paid, payment_method, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerName,
		booking.PhoneNumber,
		booking.RoomType,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.AmountPaid,
		booking.PaymentMethod,
		booking.TransactionID,
		booking.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, customer_name, phone_number, room_type, check_in_date, check_out_date, amount_paid, payment_method, transaction_id, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.CustomerName,
		&booking.PhoneNumber,
		&booking.RoomType,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.AmountPaid,
		&booking.PaymentMethod,
		&booking.TransactionID,
		&booking.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}
