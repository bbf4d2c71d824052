package models

import "time"

// SpecialOffer represents a promotional offer shown on the dashboard.
// Offers are browse-only; they do not affect pricing.
type SpecialOffer struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	ValidUntil  *time.Time `json:"valid_until,omitempty" db:"valid_until"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
