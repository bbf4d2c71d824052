package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind identifies the type of bookable inventory
type ItemKind string

const (
	KindBus   ItemKind = "bus"
	KindHotel ItemKind = "hotel"
)

// IsValid reports whether the kind is a recognized inventory kind
func (k ItemKind) IsValid() bool {
	return k == KindBus || k == KindHotel
}

// InventoryItem represents a bookable item with finite units.
// TotalUnits is immutable after creation; AvailableUnits is mutated only
// through the reservation engine's atomic adjust operations and always
// satisfies 0 <= AvailableUnits <= TotalUnits.
type InventoryItem struct {
	ID             string          `json:"id" db:"id"`
	Kind           ItemKind        `json:"kind" db:"kind"`
	Name           string          `json:"name" db:"name"`
	Description    *string         `json:"description,omitempty" db:"description"`
	Route          *string         `json:"route,omitempty" db:"route"`
	DepartureTime  *string         `json:"departure_time,omitempty" db:"departure_time"`
	ArrivalTime    *string         `json:"arrival_time,omitempty" db:"arrival_time"`
	Location       *string         `json:"location,omitempty" db:"location"`
	TotalUnits     int             `json:"total_units" db:"total_units"`
	AvailableUnits int             `json:"available_units" db:"available_units"`
	UnitPrice      decimal.Decimal `json:"unit_price" db:"unit_price"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}
