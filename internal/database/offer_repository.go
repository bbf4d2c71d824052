package database

import (
	"fmt"
	"time"

	"github.com/travelmate/booking-backend/internal/models"
)

// OfferRepository handles database operations for special offers
type OfferRepository struct {
	db DB
}

// NewOfferRepository creates a new OfferRepository
func NewOfferRepository(db DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// ListActive returns offers that have not expired, newest first.
// Offers without an expiry date are always included.
func (r *OfferRepository) ListActive(now time.Time) ([]models.SpecialOffer, error) {
	query := `
		SELECT id, title, description, valid_until, created_at
		FROM special_offers
		WHERE valid_until IS NULL OR valid_until >= $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	offers := []models.SpecialOffer{}
	for rows.Next() {
		var offer models.SpecialOffer
		if err := rows.Scan(&offer.ID, &offer.Title, &offer.Description, &offer.ValidUntil, &offer.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate offers: %w", err)
	}

	return offers, nil
}
