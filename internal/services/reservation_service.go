package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/travelmate/booking-backend/internal/events"
	"github.com/travelmate/booking-backend/internal/models"
)

// InventoryStore is the inventory access the reservation engine needs.
// Implementations must make TryReserve and Release atomic: concurrent
// calls may interleave but must never oversell or overfill an item.
type InventoryStore interface {
	GetItem(itemID string) (*models.InventoryItem, error)
	ListByKind(kind models.ItemKind) ([]models.InventoryItem, error)
	TryReserve(itemID string, quantity int) (bool, error)
	Release(itemID string, quantity int) error
}

// BookingLedger is the booking persistence the reservation engine needs
type BookingLedger interface {
	Insert(booking *models.Booking) error
	GetByID(bookingID string) (*models.Booking, error)
	MarkCancelled(bookingID string) error
	ListByUser(userID string) ([]models.Booking, error)
}

// BookingEventPublisher publishes booking lifecycle events
type BookingEventPublisher interface {
	Publish(topic string, event events.BookingEvent)
}

// ReservationConfig holds tuning knobs for the reservation engine
type ReservationConfig struct {
	LockWait      time.Duration // How long to wait for an item lock
	CommitRetries int           // Extra lock attempts before giving up
}

// DefaultReservationConfig returns default engine configuration
func DefaultReservationConfig() ReservationConfig {
	return ReservationConfig{
		LockWait:      2 * time.Second,
		CommitRetries: 2,
	}
}

// ReservationService owns the booking lifecycle: reserving inventory,
// writing the ledger, cancelling, and undoing partial work when a step
// in the middle fails.
type ReservationService struct {
	inventory InventoryStore
	ledger    BookingLedger
	pricing   *PricingCalculator
	locker    *ItemLocker
	publisher BookingEventPublisher
	config    ReservationConfig
	logger    *logrus.Logger

	// haltedItems holds item IDs frozen after a failed compensation.
	// A halted item rejects all traffic until an operator intervenes.
	haltedItems sync.Map
}

// NewReservationService creates a new ReservationService
func NewReservationService(
	inventory InventoryStore,
	ledger BookingLedger,
	pricing *PricingCalculator,
	publisher BookingEventPublisher,
	config ReservationConfig,
	logger *logrus.Logger,
) *ReservationService {
	return &ReservationService{
		inventory: inventory,
		ledger:    ledger,
		pricing:   pricing,
		locker:    NewItemLocker(),
		publisher: publisher,
		config:    config,
		logger:    logger,
	}
}

// CreateBooking validates the request, reserves inventory and records
// the booking. Validation happens before any shared state is touched
// so a rejected request leaves no trace. The reserve and the ledger
// insert run under the item's lock; if the insert fails the reserved
// units are released again.
func (s *ReservationService) CreateBooking(req *models.CreateBookingRequest) (*models.Booking, error) {
	now := time.Now().UTC()

	// 1. Validate the request shape before touching any state
	if err := req.Validate(now); err != nil {
		return nil, err
	}

	if s.isHalted(req.ItemID) {
		return nil, fmt.Errorf("%w: item %s is halted", models.ErrConsistency, req.ItemID)
	}

	// 2. Serialize on the item, retrying a bounded number of times
	attempts := 1 + s.config.CommitRetries
	acquired := false
	for i := 0; i < attempts; i++ {
		if s.locker.Acquire(req.ItemID, s.config.LockWait) {
			acquired = true
			break
		}
		s.logger.WithFields(logrus.Fields{
			"item_id": req.ItemID,
			"attempt": i + 1,
		}).Warn("Timed out waiting for item lock")
	}
	if !acquired {
		return nil, fmt.Errorf("%w: item %s", models.ErrBusy, req.ItemID)
	}
	defer s.locker.Release(req.ItemID)

	// 3. Read a fresh item snapshot under the lock
	item, err := s.inventory.GetItem(req.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Kind != req.Kind {
		return nil, fmt.Errorf("%w: item %s is a %s, not a %s", models.ErrInvalidRequest, item.ID, item.Kind, req.Kind)
	}
	for _, seat := range req.SeatNumbers {
		if seat > item.TotalUnits {
			return nil, fmt.Errorf("%w: seat %d does not exist on item %s", models.ErrInvalidRequest, seat, item.ID)
		}
	}

	// 4. Price from the snapshot read under the lock
	total, err := s.priceFor(item, req)
	if err != nil {
		return nil, err
	}

	// 5. Reserve, then write the ledger
	reserved, err := s.inventory.TryReserve(item.ID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve inventory: %w", err)
	}
	if !reserved {
		return nil, fmt.Errorf("%w: item %s has %d of %d units requested", models.ErrInsufficientInventory, item.ID, item.AvailableUnits, req.Quantity)
	}

	booking := s.buildBooking(req, total, now)
	if err := s.ledger.Insert(booking); err != nil {
		// Compensate: the reserved units must go back
		if relErr := s.inventory.Release(item.ID, req.Quantity); relErr != nil {
			s.haltItem(item.ID, relErr)
			return nil, fmt.Errorf("%w: reservation rollback failed on item %s", models.ErrConsistency, item.ID)
		}
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id":   booking.ID,
		"user_id":      booking.UserID,
		"item_id":      booking.ItemID,
		"kind":         booking.Kind,
		"quantity":     booking.Quantity,
		"total_amount": booking.TotalAmount.String(),
	}).Info("Booking confirmed")

	s.publish(events.TopicBookingCreated, booking, req.ClientIP, req.UserAgent)

	return booking, nil
}

// CancelBooking flips a confirmed booking to cancelled and returns its
// units to the item. The status flip is conditional so a booking can
// only ever be cancelled once, which means its units come back exactly
// once no matter how many cancel requests race.
func (s *ReservationService) CancelBooking(bookingID string) (*models.CancelBookingAck, error) {
	booking, err := s.ledger.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	if s.isHalted(booking.ItemID) {
		return nil, fmt.Errorf("%w: item %s is halted", models.ErrConsistency, booking.ItemID)
	}

	if !s.locker.Acquire(booking.ItemID, s.config.LockWait) {
		return nil, fmt.Errorf("%w: item %s", models.ErrBusy, booking.ItemID)
	}
	defer s.locker.Release(booking.ItemID)

	if err := s.ledger.MarkCancelled(bookingID); err != nil {
		return nil, err
	}

	if err := s.inventory.Release(booking.ItemID, booking.Quantity); err != nil {
		s.haltItem(booking.ItemID, err)
		return nil, fmt.Errorf("%w: releasing units for booking %s failed", models.ErrConsistency, bookingID)
	}

	s.logger.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"item_id":    booking.ItemID,
		"quantity":   booking.Quantity,
	}).Info("Booking cancelled")

	s.publish(events.TopicBookingCancelled, booking, "", "")

	return &models.CancelBookingAck{Ack: true, BookingID: bookingID}, nil
}

// GetBooking returns a booking by ID
func (s *ReservationService) GetBooking(bookingID string) (*models.Booking, error) {
	return s.ledger.GetByID(bookingID)
}

// ListBookingsForUser returns all bookings owned by a user, newest first
func (s *ReservationService) ListBookingsForUser(userID string) ([]models.Booking, error) {
	return s.ledger.ListByUser(userID)
}

// priceFor computes the total for the request against the item snapshot
func (s *ReservationService) priceFor(item *models.InventoryItem, req *models.CreateBookingRequest) (decimal.Decimal, error) {
	switch req.Kind {
	case models.KindBus:
		return s.pricing.BusTotal(item.UnitPrice, req.Quantity, models.SeatType(*req.SeatType))
	case models.KindHotel:
		return s.pricing.HotelTotal(item.UnitPrice, req.Quantity, req.CheckInDate, *req.CheckOutDate)
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown kind %q", models.ErrInvalidRequest, req.Kind)
	}
}

// buildBooking assembles the ledger record for a validated request
func (s *ReservationService) buildBooking(req *models.CreateBookingRequest, total decimal.Decimal, now time.Time) *models.Booking {
	transactionID := ""
	if req.TransactionID != nil {
		transactionID = *req.TransactionID
	}
	if transactionID == "" {
		transactionID = GenerateTransactionID(now)
	}

	var seatType *models.SeatType
	if req.SeatType != nil {
		st := models.SeatType(*req.SeatType)
		seatType = &st
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        req.UserID,
		ItemID:        req.ItemID,
		Kind:          req.Kind,
		Quantity:      req.Quantity,
		CheckIn:       req.CheckInDate,
		SeatType:      seatType,
		SeatNumbers:   req.SeatNumbers,
		TotalAmount:   total,
		Status:        models.BookingStatusConfirmed,
		PaymentMethod: req.PaymentMethod,
		TransactionID: transactionID,
	}
	if req.Kind == models.KindHotel {
		booking.CheckOut = req.CheckOutDate
	}

	return booking
}

// publish emits a booking lifecycle event if a publisher is wired
func (s *ReservationService) publish(topic string, booking *models.Booking, clientIP, userAgent string) {
	if s.publisher == nil {
		return
	}

	s.publisher.Publish(topic, events.BookingEvent{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ItemID:      booking.ItemID,
		Kind:        string(booking.Kind),
		Quantity:    booking.Quantity,
		TotalAmount: booking.TotalAmount,
		ClientIP:    clientIP,
		UserAgent:   userAgent,
		OccurredAt:  time.Now().UTC(),
	})
}

// isHalted reports whether the item is frozen after a failed rollback
func (s *ReservationService) isHalted(itemID string) bool {
	_, halted := s.haltedItems.Load(itemID)
	return halted
}

// haltItem freezes an item whose availability can no longer be trusted
func (s *ReservationService) haltItem(itemID string, cause error) {
	s.haltedItems.Store(itemID, time.Now().UTC())
	s.logger.WithError(cause).WithField("item_id", itemID).Error("Item halted after failed compensation, operator intervention required")
}

// GenerateTransactionID builds a payment reference in the TRX-prefixed
// format used across the platform.
func GenerateTransactionID(now time.Time) string {
	fragment := strings.Split(uuid.New().String(), "-")[0]
	return fmt.Sprintf("TRX-%d-%s", now.UnixMilli(), strings.ToUpper(fragment))
}
