package database

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/travelmate/booking-backend/internal/models"
)

// MemoryBookingLedger is an in-memory booking ledger guarded by a
// mutex, mirroring the semantics of BookingRepository.
type MemoryBookingLedger struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking

	// failNextInsert forces the next Insert to fail. Tests use it to
	// exercise reservation compensation paths.
	failNextInsert error
}

// NewMemoryBookingLedger creates an empty in-memory booking ledger
func NewMemoryBookingLedger() *MemoryBookingLedger {
	return &MemoryBookingLedger{
		bookings: make(map[string]*models.Booking),
	}
}

// FailNextInsert makes the next Insert call return err
func (l *MemoryBookingLedger) FailNextInsert(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failNextInsert = err
}

// Insert stores a confirmed booking. The booking ID is generated if empty.
func (l *MemoryBookingLedger) Insert(booking *models.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failNextInsert != nil {
		err := l.failNextInsert
		l.failNextInsert = nil
		return err
	}

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now().UTC()

	stored := *booking
	l.bookings[booking.ID] = &stored
	return nil
}

// GetByID returns a snapshot of the booking with the given ID
func (l *MemoryBookingLedger) GetByID(bookingID string) (*models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking, ok := l.bookings[bookingID]
	if !ok {
		return nil, models.ErrBookingNotFound
	}

	snapshot := *booking
	return &snapshot, nil
}

// MarkCancelled flips a confirmed booking to cancelled. Cancelling an
// already cancelled booking returns ErrAlreadyCancelled.
func (l *MemoryBookingLedger) MarkCancelled(bookingID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	booking, ok := l.bookings[bookingID]
	if !ok {
		return models.ErrBookingNotFound
	}
	if booking.IsCancelled() {
		return models.ErrAlreadyCancelled
	}

	booking.Status = models.BookingStatusCancelled
	return nil
}

// ListByUser returns the user's bookings, newest first
func (l *MemoryBookingLedger) ListByUser(userID string) ([]models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bookings := []models.Booking{}
	for _, booking := range l.bookings {
		if booking.UserID == userID {
			bookings = append(bookings, *booking)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

// SumConfirmedQuantity returns the total confirmed units for an item
func (l *MemoryBookingLedger) SumConfirmedQuantity(itemID string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := 0
	for _, booking := range l.bookings {
		if booking.ItemID == itemID && booking.Status == models.BookingStatusConfirmed {
			total += booking.Quantity
		}
	}

	return total, nil
}
