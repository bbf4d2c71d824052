package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/travelmate/booking-backend/internal/models"
)

// AuditRepository persists booking audit records
type AuditRepository struct {
	db DB
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Insert stores an audit record. The record ID is generated if empty.
func (r *AuditRepository) Insert(record *models.BookingAuditRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO booking_audit (id, booking_id, action, user_id, item_id, quantity, total_amount, ip_address, device_type, browser)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := r.db.QueryRow(query,
		record.ID, record.BookingID, record.Action, record.UserID, record.ItemID,
		record.Quantity, record.TotalAmount, record.IPAddress, record.DeviceType, record.Browser,
	).Scan(&record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit record: %w", err)
	}

	return nil
}

// ListByBooking returns the audit trail for a booking, oldest first
func (r *AuditRepository) ListByBooking(bookingID string) ([]models.BookingAuditRecord, error) {
	query := `
		SELECT id, booking_id, action, user_id, item_id, quantity, total_amount, ip_address, device_type, browser, created_at
		FROM booking_audit
		WHERE booking_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	defer rows.Close()

	records := []models.BookingAuditRecord{}
	for rows.Next() {
		var rec models.BookingAuditRecord
		if err := rows.Scan(
			&rec.ID, &rec.BookingID, &rec.Action, &rec.UserID, &rec.ItemID,
			&rec.Quantity, &rec.TotalAmount, &rec.IPAddress, &rec.DeviceType, &rec.Browser, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit records: %w", err)
	}

	return records, nil
}
