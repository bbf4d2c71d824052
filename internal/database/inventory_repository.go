package database

import (
	"database/sql"
	"fmt"

	"github.com/travelmate/booking-backend/internal/models"
)

// InventoryRepository handles database operations for inventory_items.
// TryReserve and Release are single conditional statements, so each is
// atomic relative to every other mutation of the same row.
type InventoryRepository struct {
	db DB
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetItem retrieves an inventory item by ID
func (r *InventoryRepository) GetItem(itemID string) (*models.InventoryItem, error) {
	query := `
		SELECT id, kind, name, description, route, departure_time, arrival_time,
		       location, total_units, available_units, unit_price, created_at
		FROM inventory_items
		WHERE id = $1
	`

	return r.scanItem(r.db.QueryRow(query, itemID))
}

// ListByKind retrieves all inventory items of a kind, newest first
func (r *InventoryRepository) ListByKind(kind models.ItemKind) ([]models.InventoryItem, error) {
	query := `
		SELECT id, kind, name, description, route, departure_time, arrival_time,
		       location, total_units, available_units, unit_price, created_at
		FROM inventory_items
		WHERE kind = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		item, err := r.scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, rows.Err()
}

// TryReserve decrements available_units iff at least quantity units remain.
// Returns false and leaves the row unchanged otherwise.
func (r *InventoryRepository) TryReserve(itemID string, quantity int) (bool, error) {
	query := `
		UPDATE inventory_items
		SET available_units = available_units - $2
		WHERE id = $1
		  AND available_units >= $2
	`

	result, err := r.db.Exec(query, itemID, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to reserve inventory: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// Release restores quantity units to the item. Restoring past total_units
// means a caller released units it never reserved; that is reported as a
// consistency violation, never silently clamped.
func (r *InventoryRepository) Release(itemID string, quantity int) error {
	query := `
		UPDATE inventory_items
		SET available_units = available_units + $2
		WHERE id = $1
		  AND available_units + $2 <= total_units
	`

	result, err := r.db.Exec(query, itemID, quantity)
	if err != nil {
		return fmt.Errorf("failed to release inventory: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		if _, err := r.GetItem(itemID); err != nil {
			return err
		}
		return fmt.Errorf("%w: releasing %d units on item %s would exceed total_units",
			models.ErrConsistency, quantity, itemID)
	}

	return nil
}

// scanItem scans a single inventory item
func (r *InventoryRepository) scanItem(row scanner) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	var description sql.NullString
	var route sql.NullString
	var departureTime sql.NullString
	var arrivalTime sql.NullString
	var location sql.NullString

	err := row.Scan(
		&item.ID, &item.Kind, &item.Name, &description, &route, &departureTime,
		&arrivalTime, &location, &item.TotalUnits, &item.AvailableUnits,
		&item.UnitPrice, &item.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}

	if description.Valid {
		item.Description = &description.String
	}
	if route.Valid {
		item.Route = &route.String
	}
	if departureTime.Valid {
		item.DepartureTime = &departureTime.String
	}
	if arrivalTime.Valid {
		item.ArrivalTime = &arrivalTime.String
	}
	if location.Valid {
		item.Location = &location.String
	}

	return item, nil
}
