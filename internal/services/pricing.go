package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/travelmate/booking-backend/internal/models"
)

// seatTypeMultipliers maps seat tiers to their price multipliers
var seatTypeMultipliers = map[models.SeatType]decimal.Decimal{
	models.SeatTypeStandard:  decimal.NewFromInt(1),
	models.SeatTypeACComfort: decimal.RequireFromString("1.2"),
	models.SeatTypeSleeper:   decimal.RequireFromString("1.5"),
}

// PricingCalculator computes booking totals from item unit prices.
// All arithmetic is exact decimal; totals are rounded to two places.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// BusTotal computes the total for a bus booking: unit price times
// quantity times the seat tier multiplier.
func (p *PricingCalculator) BusTotal(unitPrice decimal.Decimal, quantity int, seatType models.SeatType) (decimal.Decimal, error) {
	multiplier, ok := seatTypeMultipliers[seatType]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown seat type %q", models.ErrInvalidRequest, seatType)
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Mul(multiplier)
	return total.Round(2), nil
}

// HotelTotal computes the total for a hotel booking: unit price times
// quantity of rooms times the number of nights.
func (p *PricingCalculator) HotelTotal(unitPrice decimal.Decimal, quantity int, checkIn, checkOut time.Time) (decimal.Decimal, error) {
	nights := Nights(checkIn, checkOut)
	if nights < 1 {
		return decimal.Zero, fmt.Errorf("%w: checkout must be after checkin", models.ErrInvalidRequest)
	}

	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Mul(decimal.NewFromInt(int64(nights)))
	return total.Round(2), nil
}

// Nights returns the number of billable nights between two dates.
// Partial days count as a full night and stays shorter than one day
// are billed as one night.
func Nights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	if hours <= 0 {
		return 0
	}

	nights := int(hours / 24)
	if hours > float64(nights)*24 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}
