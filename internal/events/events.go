package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Topics for booking lifecycle events
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published on booking lifecycle topics
type BookingEvent struct {
	BookingID   string          `json:"booking_id"`
	UserID      string          `json:"user_id"`
	ItemID      string          `json:"item_id"`
	Kind        string          `json:"kind"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ClientIP    string          `json:"client_ip,omitempty"`
	UserAgent   string          `json:"user_agent,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// Bus carries booking lifecycle events between the reservation engine
// and subscribers over an in-process pub/sub channel.
type Bus struct {
	pubSub *gochannel.GoChannel
	logger *logrus.Logger
}

// NewBus creates an in-process event bus
func NewBus(logger *logrus.Logger) *Bus {
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
	}, NewLoggerAdapter(logger))

	return &Bus{
		pubSub: pubSub,
		logger: logger,
	}
}

// Publish serializes the event and publishes it on the given topic.
// Publish failures are logged but never surfaced to the caller; a
// booking must not fail because a subscriber is behind.
func (b *Bus) Publish(topic string, event BookingEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		b.logger.WithError(err).WithField("topic", topic).Error("Failed to marshal booking event")
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := b.pubSub.Publish(topic, msg); err != nil {
		b.logger.WithError(err).WithFields(logrus.Fields{
			"topic":      topic,
			"booking_id": event.BookingID,
		}).Error("Failed to publish booking event")
	}
}

// Subscribe returns a channel of messages for the given topic
func (b *Bus) Subscribe(topic string) (<-chan *message.Message, error) {
	messages, err := b.pubSub.Subscribe(context.Background(), topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	return messages, nil
}

// Close shuts down the bus and closes all subscriber channels
func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// DecodeBookingEvent unmarshals a message payload into a BookingEvent
func DecodeBookingEvent(msg *message.Message) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return BookingEvent{}, fmt.Errorf("failed to decode booking event: %w", err)
	}
	return event, nil
}
