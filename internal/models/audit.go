package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditAction identifies the booking lifecycle event being recorded
type AuditAction string

const (
	AuditBookingCreated   AuditAction = "booking_created"
	AuditBookingCancelled AuditAction = "booking_cancelled"
)

// BookingAuditRecord is an append-only trail entry for a booking lifecycle
// event. Device fields are parsed from the client User-Agent.
type BookingAuditRecord struct {
	ID          string          `json:"id" db:"id"`
	BookingID   string          `json:"booking_id" db:"booking_id"`
	Action      AuditAction     `json:"action" db:"action"`
	UserID      string          `json:"user_id" db:"user_id"`
	ItemID      string          `json:"item_id" db:"item_id"`
	Quantity    int             `json:"quantity" db:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount" db:"total_amount"`
	IPAddress   *string         `json:"ip_address,omitempty" db:"ip_address"`
	DeviceType  *string         `json:"device_type,omitempty" db:"device_type"`
	Browser     *string         `json:"browser,omitempty" db:"browser"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
