package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
)

// SeatNumbers is a custom type for handling INTEGER[] seat-number columns
// in PostgreSQL
type SeatNumbers []int

// Value implements the driver.Valuer interface
func (a SeatNumbers) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return pq.Array([]int(a)).Value()
}

// Scan implements the sql.Scanner interface
func (a *SeatNumbers) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	slice := (*[]int)(a)
	return pq.Array(slice).Scan(src)
}
