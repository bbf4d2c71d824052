package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/travelmate/booking-backend/internal/models"
)

// BookingRepository handles database operations for the bookings ledger.
// Rows are inserted and status-transitioned, never deleted.
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Insert creates a new booking row
func (r *BookingRepository) Insert(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, item_id, kind, quantity,
			checkin, checkout, seat_type, seat_numbers,
			total_amount, status, payment_method, transaction_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		RETURNING created_at
	`

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	err := r.db.QueryRow(
		query,
		booking.ID, booking.UserID, booking.ItemID, booking.Kind, booking.Quantity,
		booking.CheckIn, booking.CheckOut, booking.SeatType, booking.SeatNumbers,
		booking.TotalAmount, booking.Status, booking.PaymentMethod, booking.TransactionID,
	).Scan(&booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

// GetByID retrieves a booking by ID
func (r *BookingRepository) GetByID(bookingID string) (*models.Booking, error) {
	query := `
		SELECT id, user_id, item_id, kind, quantity,
		       checkin, checkout, seat_type, seat_numbers,
		       total_amount, status, payment_method, transaction_id, created_at
		FROM bookings
		WHERE id = $1
	`

	return r.scanBooking(r.db.QueryRow(query, bookingID))
}

// MarkCancelled transitions a confirmed booking to cancelled. The status
// guard makes the transition race-safe: a second cancel affects no rows.
func (r *BookingRepository) MarkCancelled(bookingID string) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE id = $1
		  AND status = 'confirmed'
	`

	result, err := r.db.Exec(query, bookingID)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		booking, err := r.GetByID(bookingID)
		if err != nil {
			return err
		}
		if booking.IsCancelled() {
			return models.ErrAlreadyCancelled
		}
		return fmt.Errorf("booking %s is in unexpected status %s", bookingID, booking.Status)
	}

	return nil
}

// ListByUser retrieves all bookings for a user, newest first
func (r *BookingRepository) ListByUser(userID string) ([]models.Booking, error) {
	query := `
		SELECT id, user_id, item_id, kind, quantity,
		       checkin, checkout, seat_type, seat_numbers,
		       total_amount, status, payment_method, transaction_id, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}

	return bookings, rows.Err()
}

// SumConfirmedQuantity returns the total confirmed units booked on an item.
// Used by the consistency check against available_units.
func (r *BookingRepository) SumConfirmedQuantity(itemID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM bookings
		WHERE item_id = $1
		  AND status = 'confirmed'
	`

	var total int
	err := r.db.QueryRow(query, itemID).Scan(&total)
	return total, err
}

// scanBooking scans a single booking
func (r *BookingRepository) scanBooking(row scanner) (*models.Booking, error) {
	booking := &models.Booking{}
	var checkOut sql.NullTime
	var seatType sql.NullString

	err := row.Scan(
		&booking.ID, &booking.UserID, &booking.ItemID, &booking.Kind, &booking.Quantity,
		&booking.CheckIn, &checkOut, &seatType, &booking.SeatNumbers,
		&booking.TotalAmount, &booking.Status, &booking.PaymentMethod,
		&booking.TransactionID, &booking.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	if checkOut.Valid {
		booking.CheckOut = &checkOut.Time
	}
	if seatType.Valid {
		st := models.SeatType(seatType.String)
		booking.SeatType = &st
	}

	return booking, nil
}
