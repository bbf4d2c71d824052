package database

import (
	"sort"
	"sync"
	"time"

	"github.com/travelmate/booking-backend/internal/models"
)

// MemoryOfferStore is an in-memory special offer store for local development
type MemoryOfferStore struct {
	mu     sync.Mutex
	offers []models.SpecialOffer
}

// NewMemoryOfferStore creates an empty in-memory offer store
func NewMemoryOfferStore() *MemoryOfferStore {
	return &MemoryOfferStore{}
}

// Seed adds an offer to the store
func (s *MemoryOfferStore) Seed(offer models.SpecialOffer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers = append(s.offers, offer)
}

// ListActive returns offers that have not expired, newest first
func (s *MemoryOfferStore) ListActive(now time.Time) ([]models.SpecialOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := []models.SpecialOffer{}
	for _, offer := range s.offers {
		if offer.ValidUntil == nil || !offer.ValidUntil.Before(now) {
			active = append(active, offer)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})

	return active, nil
}
