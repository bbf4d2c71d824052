package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelmate/booking-backend/internal/models"
)

var itemColumns = []string{
	"id", "kind", "name", "description", "route", "departure_time",
	"arrival_time", "location", "total_units", "available_units",
	"unit_price", "created_at",
}

func TestGetItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInventoryRepository(&mockDatabase{db: db})

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM inventory_items WHERE id`).
			WithArgs("bus-1").
			WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(
				"bus-1", "bus", "GreenLine Intercity", nil, "Karachi to Lahore", "09:00 PM",
				"09:00 AM", nil, 40, 12, "4200", now,
			))

		item, err := repo.GetItem("bus-1")
		require.NoError(t, err)
		assert.Equal(t, "bus-1", item.ID)
		assert.Equal(t, models.KindBus, item.Kind)
		assert.Equal(t, 40, item.TotalUnits)
		assert.Equal(t, 12, item.AvailableUnits)
		assert.Equal(t, "4200", item.UnitPrice.String())
		require.NotNil(t, item.Route)
		assert.Equal(t, "Karachi to Lahore", *item.Route)
		assert.Nil(t, item.Location)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM inventory_items WHERE id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		item, err := repo.GetItem("missing")
		assert.Nil(t, item)
		assert.ErrorIs(t, err, models.ErrItemNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListByKind(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInventoryRepository(&mockDatabase{db: db})

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM inventory_items WHERE kind`).
			WithArgs("hotel").
			WillReturnRows(sqlmock.NewRows(itemColumns).
				AddRow("hotel-1", "hotel", "Serena Hotel Islamabad", nil, nil, nil, nil, "Islamabad", 25, 25, "20000", now).
				AddRow("hotel-2", "hotel", "Pearl Continental Lahore", nil, nil, nil, nil, "Lahore", 30, 8, "18000", now))

		items, err := repo.ListByKind(models.KindHotel)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "hotel-1", items[0].ID)
		assert.Equal(t, "hotel-2", items[1].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM inventory_items WHERE kind`).
			WithArgs("bus").
			WillReturnRows(sqlmock.NewRows(itemColumns))

		items, err := repo.ListByKind(models.KindBus)
		require.NoError(t, err)
		assert.Empty(t, items)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTryReserve(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInventoryRepository(&mockDatabase{db: db})

	t.Run("Reserved", func(t *testing.T) {
		mock.ExpectExec(`UPDATE inventory_items SET available_units`).
			WithArgs("bus-1", 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.TryReserve("bus-1", 3)
		require.NoError(t, err)
		assert.True(t, ok)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient", func(t *testing.T) {
		mock.ExpectExec(`UPDATE inventory_items SET available_units`).
			WithArgs("bus-1", 50).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.TryReserve("bus-1", 50)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE inventory_items SET available_units`).
			WithArgs("bus-1", 3).
			WillReturnError(fmt.Errorf("database error"))

		_, err := repo.TryReserve("bus-1", 3)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRelease(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewInventoryRepository(&mockDatabase{db: db})

	t.Run("Released", func(t *testing.T) {
		mock.ExpectExec(`UPDATE inventory_items SET available_units`).
			WithArgs("bus-1", 3).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Release("bus-1", 3)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Would Exceed Capacity", func(t *testing.T) {
		mock.ExpectExec(`UPDATE inventory_items SET available_units`).
			WithArgs("bus-1", 100).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT (.+) FROM inventory_items WHERE id`).
			WithArgs("bus-1").
			WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(
				"bus-1", "bus", "GreenLine Intercity", nil, nil, nil, nil, nil, 40, 40, "4200", time.Now(),
			))

		err := repo.Release("bus-1", 100)
		assert.ErrorIs(t, err, models.ErrConsistency)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Item Missing", func(t *testing.T) {
		mock.ExpectExec(`UPDATE inventory_items SET available_units`).
			WithArgs("missing", 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT (.+) FROM inventory_items WHERE id`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		err := repo.Release("missing", 1)
		assert.ErrorIs(t, err, models.ErrItemNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
