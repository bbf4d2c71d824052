package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// SeatType represents a bus seat tier
type SeatType string

const (
	SeatTypeStandard  SeatType = "Standard"
	SeatTypeACComfort SeatType = "AC Comfort"
	SeatTypeSleeper   SeatType = "Sleeper"
)

// IsValid reports whether the seat type is a recognized tier
func (s SeatType) IsValid() bool {
	switch s {
	case SeatTypeStandard, SeatTypeACComfort, SeatTypeSleeper:
		return true
	}
	return false
}

// recognizedPaymentMethods is the set of payment methods accepted at booking
// time. The backend records the claimed method; it never charges it.
var recognizedPaymentMethods = map[string]bool{
	"Credit Card": true,
	"Debit Card":  true,
	"JazzCash":    true,
	"EasyPaisa":   true,
}

// IsRecognizedPaymentMethod reports whether the payment method is accepted
func IsRecognizedPaymentMethod(method string) bool {
	return recognizedPaymentMethods[method]
}

// Booking represents a reservation of inventory units. Rows are never
// deleted; cancellation only transitions the status.
type Booking struct {
	ID            string          `json:"id" db:"id"`
	UserID        string          `json:"user_id" db:"user_id"`
	ItemID        string          `json:"item_id" db:"item_id"`
	Kind          ItemKind        `json:"kind" db:"kind"`
	Quantity      int             `json:"quantity" db:"quantity"`
	CheckIn       time.Time       `json:"checkin" db:"checkin"`
	CheckOut      *time.Time      `json:"checkout,omitempty" db:"checkout"`
	SeatType      *SeatType       `json:"seat_type,omitempty" db:"seat_type"`
	SeatNumbers   SeatNumbers     `json:"seat_numbers,omitempty" db:"seat_numbers"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status        BookingStatus   `json:"status" db:"status"`
	PaymentMethod string          `json:"payment_method" db:"payment_method"`
	TransactionID string          `json:"transaction_id" db:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// IsCancelled reports whether the booking reached its terminal state
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CreateBookingRequest represents a request to reserve inventory
type CreateBookingRequest struct {
	UserID        string   `json:"user_id" binding:"required"`
	ItemID        string   `json:"item_id" binding:"required"`
	Kind          ItemKind `json:"kind" binding:"required"`
	Quantity      int      `json:"quantity" binding:"required"`
	CheckIn       string   `json:"checkin_date" binding:"required"` // YYYY-MM-DD
	CheckOut      *string  `json:"checkout_date,omitempty"`         // YYYY-MM-DD, hotel only
	SeatType      *string  `json:"seat_type,omitempty"`             // bus only
	SeatNumbers   []int    `json:"seat_numbers,omitempty"`          // bus only
	PaymentMethod string   `json:"payment_method" binding:"required"`
	TransactionID *string  `json:"transaction_id,omitempty"`

	// Set by the HTTP layer for the audit trail, never bound from the body
	ClientIP  string `json:"-"`
	UserAgent string `json:"-"`

	// Populated by Validate
	CheckInDate  time.Time  `json:"-"`
	CheckOutDate *time.Time `json:"-"`
}

const dateLayout = "2006-01-02"

// Validate checks request shape and business rules that do not depend on
// shared state. Seat numbers are range-checked against the item's total
// units later, inside the engine's atomic commit.
func (r *CreateBookingRequest) Validate(now time.Time) error {
	if !r.Kind.IsValid() {
		return fmt.Errorf("%w: unknown booking kind %q", ErrInvalidRequest, r.Kind)
	}

	if r.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidRequest)
	}

	if !IsRecognizedPaymentMethod(r.PaymentMethod) {
		return fmt.Errorf("%w: unrecognized payment method %q", ErrInvalidRequest, r.PaymentMethod)
	}

	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return fmt.Errorf("%w: invalid checkin_date %q, expected YYYY-MM-DD", ErrInvalidRequest, r.CheckIn)
	}
	r.CheckInDate = checkIn

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return fmt.Errorf("%w: checkin_date cannot be in the past", ErrInvalidRequest)
	}

	switch r.Kind {
	case KindBus:
		return r.validateBus()
	case KindHotel:
		return r.validateHotel(checkIn)
	}

	return nil
}

func (r *CreateBookingRequest) validateBus() error {
	if r.CheckOut != nil && *r.CheckOut != "" {
		return fmt.Errorf("%w: checkout_date is not allowed for bus bookings", ErrInvalidRequest)
	}

	if r.SeatType == nil {
		return fmt.Errorf("%w: seat_type is required for bus bookings", ErrInvalidRequest)
	}
	if !SeatType(*r.SeatType).IsValid() {
		return fmt.Errorf("%w: unknown seat type %q", ErrInvalidRequest, *r.SeatType)
	}

	if len(r.SeatNumbers) != r.Quantity {
		return fmt.Errorf("%w: expected %d seat numbers, got %d", ErrInvalidRequest, r.Quantity, len(r.SeatNumbers))
	}

	seen := make(map[int]bool, len(r.SeatNumbers))
	for _, n := range r.SeatNumbers {
		if n < 1 {
			return fmt.Errorf("%w: seat number %d is out of range", ErrInvalidRequest, n)
		}
		if seen[n] {
			return fmt.Errorf("%w: duplicate seat number %d", ErrInvalidRequest, n)
		}
		seen[n] = true
	}

	return nil
}

func (r *CreateBookingRequest) validateHotel(checkIn time.Time) error {
	if len(r.SeatNumbers) > 0 || r.SeatType != nil {
		return fmt.Errorf("%w: seat selection is not allowed for hotel bookings", ErrInvalidRequest)
	}

	if r.CheckOut == nil || *r.CheckOut == "" {
		return fmt.Errorf("%w: checkout_date is required for hotel bookings", ErrInvalidRequest)
	}

	checkOut, err := time.Parse(dateLayout, *r.CheckOut)
	if err != nil {
		return fmt.Errorf("%w: invalid checkout_date %q, expected YYYY-MM-DD", ErrInvalidRequest, *r.CheckOut)
	}

	if !checkOut.After(checkIn) {
		return fmt.Errorf("%w: checkout_date must be after checkin_date", ErrInvalidRequest)
	}
	r.CheckOutDate = &checkOut

	return nil
}

// CancelBookingAck is returned on successful cancellation
type CancelBookingAck struct {
	Ack       bool   `json:"ack"`
	BookingID string `json:"booking_id"`
}
