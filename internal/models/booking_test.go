package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func validBusRequest() *CreateBookingRequest {
	seatType := string(SeatTypeStandard)
	return &CreateBookingRequest{
		UserID:        "user-1",
		ItemID:        "bus-1",
		Kind:          KindBus,
		Quantity:      2,
		CheckIn:       "2026-09-10",
		SeatType:      &seatType,
		SeatNumbers:   []int{4, 5},
		PaymentMethod: "JazzCash",
	}
}

func validHotelRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		UserID:        "user-1",
		ItemID:        "hotel-1",
		Kind:          KindHotel,
		Quantity:      1,
		CheckIn:       "2026-09-10",
		CheckOut:      strPtr("2026-09-13"),
		PaymentMethod: "Credit Card",
	}
}

var validationNow = time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

func TestCreateBookingRequestValidate_Bus(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		req := validBusRequest()
		assert.NoError(t, req.Validate(validationNow))
		assert.Equal(t, time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC), req.CheckInDate)
	})

	t.Run("Checkin Today Is Allowed", func(t *testing.T) {
		req := validBusRequest()
		req.CheckIn = "2026-09-01"
		assert.NoError(t, req.Validate(validationNow))
	})

	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"Unknown Kind", func(r *CreateBookingRequest) { r.Kind = "flight" }},
		{"Zero Quantity", func(r *CreateBookingRequest) { r.Quantity = 0; r.SeatNumbers = nil }},
		{"Negative Quantity", func(r *CreateBookingRequest) { r.Quantity = -1; r.SeatNumbers = nil }},
		{"Unknown Payment Method", func(r *CreateBookingRequest) { r.PaymentMethod = "Barter" }},
		{"Bad Date Format", func(r *CreateBookingRequest) { r.CheckIn = "10/09/2026" }},
		{"Past Checkin", func(r *CreateBookingRequest) { r.CheckIn = "2026-08-31" }},
		{"Checkout On Bus", func(r *CreateBookingRequest) { r.CheckOut = strPtr("2026-09-12") }},
		{"Missing Seat Type", func(r *CreateBookingRequest) { r.SeatType = nil }},
		{"Unknown Seat Type", func(r *CreateBookingRequest) { r.SeatType = strPtr("First Class") }},
		{"Seat Count Mismatch", func(r *CreateBookingRequest) { r.SeatNumbers = []int{4} }},
		{"Duplicate Seats", func(r *CreateBookingRequest) { r.SeatNumbers = []int{4, 4} }},
		{"Seat Below One", func(r *CreateBookingRequest) { r.SeatNumbers = []int{0, 5} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBusRequest()
			tt.mutate(req)
			assert.ErrorIs(t, req.Validate(validationNow), ErrInvalidRequest)
		})
	}
}

func TestCreateBookingRequestValidate_Hotel(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		req := validHotelRequest()
		assert.NoError(t, req.Validate(validationNow))
		assert.NotNil(t, req.CheckOutDate)
	})

	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"Missing Checkout", func(r *CreateBookingRequest) { r.CheckOut = nil }},
		{"Empty Checkout", func(r *CreateBookingRequest) { r.CheckOut = strPtr("") }},
		{"Bad Checkout Format", func(r *CreateBookingRequest) { r.CheckOut = strPtr("13/09/2026") }},
		{"Checkout Equals Checkin", func(r *CreateBookingRequest) { r.CheckOut = strPtr("2026-09-10") }},
		{"Checkout Before Checkin", func(r *CreateBookingRequest) { r.CheckOut = strPtr("2026-09-09") }},
		{"Seats On Hotel", func(r *CreateBookingRequest) { r.SeatNumbers = []int{1} }},
		{"Seat Type On Hotel", func(r *CreateBookingRequest) { r.SeatType = strPtr("Standard") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validHotelRequest()
			tt.mutate(req)
			assert.ErrorIs(t, req.Validate(validationNow), ErrInvalidRequest)
		})
	}
}

func TestSeatTypeIsValid(t *testing.T) {
	assert.True(t, SeatTypeStandard.IsValid())
	assert.True(t, SeatTypeACComfort.IsValid())
	assert.True(t, SeatTypeSleeper.IsValid())
	assert.False(t, SeatType("Economy").IsValid())
}

func TestIsRecognizedPaymentMethod(t *testing.T) {
	for _, method := range []string{"Credit Card", "Debit Card", "JazzCash", "EasyPaisa"} {
		assert.True(t, IsRecognizedPaymentMethod(method), method)
	}
	assert.False(t, IsRecognizedPaymentMethod("Cash"))
	assert.False(t, IsRecognizedPaymentMethod(""))
}
