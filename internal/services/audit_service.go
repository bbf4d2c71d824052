package services

import (
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/sirupsen/logrus"
	"github.com/travelmate/booking-backend/internal/events"
	"github.com/travelmate/booking-backend/internal/models"
	"github.com/travelmate/booking-backend/internal/utils"
)

// AuditSink persists audit records
type AuditSink interface {
	Insert(record *models.BookingAuditRecord) error
}

// AuditService consumes booking lifecycle events from the bus and
// writes an audit trail, enriched with device information parsed from
// the client's user agent.
type AuditService struct {
	sink   AuditSink
	bus    *events.Bus
	logger *logrus.Logger
	wg     sync.WaitGroup
}

// NewAuditService creates a new AuditService
func NewAuditService(sink AuditSink, bus *events.Bus, logger *logrus.Logger) *AuditService {
	return &AuditService{
		sink:   sink,
		bus:    bus,
		logger: logger,
	}
}

// Start subscribes to the booking topics and begins consuming. It
// returns after the subscriptions are established; consumption runs
// until the bus is closed.
func (s *AuditService) Start() error {
	created, err := s.bus.Subscribe(events.TopicBookingCreated)
	if err != nil {
		return err
	}
	cancelled, err := s.bus.Subscribe(events.TopicBookingCancelled)
	if err != nil {
		return err
	}

	s.wg.Add(2)
	go s.consume(created, models.AuditBookingCreated)
	go s.consume(cancelled, models.AuditBookingCancelled)

	return nil
}

// Wait blocks until all consumers have drained, after the bus closes
func (s *AuditService) Wait() {
	s.wg.Wait()
}

func (s *AuditService) consume(messages <-chan *message.Message, action models.AuditAction) {
	defer s.wg.Done()

	for msg := range messages {
		event, err := events.DecodeBookingEvent(msg)
		if err != nil {
			s.logger.WithError(err).Error("Failed to decode booking event, dropping")
			msg.Ack()
			continue
		}

		if err := s.record(event, action); err != nil {
			s.logger.WithError(err).WithField("booking_id", event.BookingID).Error("Failed to write audit record")
		}
		msg.Ack()
	}
}

// record builds and persists the audit row for an event
func (s *AuditService) record(event events.BookingEvent, action models.AuditAction) error {
	record := &models.BookingAuditRecord{
		BookingID:   event.BookingID,
		Action:      action,
		UserID:      event.UserID,
		ItemID:      event.ItemID,
		Quantity:    event.Quantity,
		TotalAmount: event.TotalAmount,
	}
	if event.ClientIP != "" {
		record.IPAddress = &event.ClientIP
	}
	if event.UserAgent != "" {
		device := utils.ParseUserAgent(event.UserAgent)
		record.DeviceType = &device.DeviceType
		record.Browser = &device.Browser
	}

	return s.sink.Insert(record)
}
