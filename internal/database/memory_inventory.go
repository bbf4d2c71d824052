package database

import (
	"fmt"
	"sort"
	"sync"

	"github.com/travelmate/booking-backend/internal/models"
)

// MemoryInventoryStore is an in-memory inventory store guarded by a
// mutex. It is used for local development and in tests where a real
// database is not available.
type MemoryInventoryStore struct {
	mu    sync.Mutex
	items map[string]*models.InventoryItem
}

// NewMemoryInventoryStore creates an empty in-memory inventory store
func NewMemoryInventoryStore() *MemoryInventoryStore {
	return &MemoryInventoryStore{
		items: make(map[string]*models.InventoryItem),
	}
}

// Seed adds or replaces an item in the store
func (s *MemoryInventoryStore) Seed(item models.InventoryItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := item
	s.items[item.ID] = &copied
}

// GetItem returns a snapshot of the item with the given ID
func (s *MemoryInventoryStore) GetItem(itemID string) (*models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return nil, models.ErrItemNotFound
	}

	snapshot := *item
	return &snapshot, nil
}

// ListByKind returns all items of the given kind, newest first
func (s *MemoryInventoryStore) ListByKind(kind models.ItemKind) ([]models.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := []models.InventoryItem{}
	for _, item := range s.items {
		if item.Kind == kind {
			items = append(items, *item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}

// TryReserve atomically decrements available units if enough remain.
// Returns false when the item has fewer than quantity units available.
func (s *MemoryInventoryStore) TryReserve(itemID string, quantity int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return false, models.ErrItemNotFound
	}
	if item.AvailableUnits < quantity {
		return false, nil
	}

	item.AvailableUnits -= quantity
	return true, nil
}

// Release returns previously reserved units to the item. Releasing
// more units than were reserved is a consistency violation.
func (s *MemoryInventoryStore) Release(itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemID]
	if !ok {
		return models.ErrItemNotFound
	}
	if item.AvailableUnits+quantity > item.TotalUnits {
		return fmt.Errorf("%w: releasing %d units on item %s would exceed total_units", models.ErrConsistency, quantity, itemID)
	}

	item.AvailableUnits += quantity
	return nil
}
