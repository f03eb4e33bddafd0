// Package store persists inventories and grocery lists with SQLite. It is
// host-side glue around the engine: the engine only ever sees plain slices
// fetched here, and updated values are written back explicitly.
package store

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"larder/internal/engine"
	"larder/internal/models"
)

// Store wraps the database connection.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&models.InventoryEntry{}, &models.GroceryEntry{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListInventory returns all inventory entries.
func (s *Store) ListInventory() ([]models.InventoryEntry, error) {
	var entries []models.InventoryEntry
	if err := s.db.Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return entries, nil
}

// SaveInventoryEntry creates or updates an inventory entry.
func (s *Store) SaveInventoryEntry(entry *models.InventoryEntry) error {
	if err := s.db.Save(entry).Error; err != nil {
		return fmt.Errorf("save inventory entry: %w", err)
	}
	return nil
}

// Deplete subtracts a used quantity from the inventory entry matching name,
// converting into the entry's unit when the units differ but share a
// measure class. Stock is clamped at zero; nothing user-facing goes
// negative. Returns the updated entry, or ok=false when no entry matched or
// the units could not be reconciled.
func (s *Store) Deplete(name string, used models.Quantity) (*models.InventoryEntry, bool, error) {
	entries, err := s.ListInventory()
	if err != nil {
		return nil, false, err
	}

	match := engine.FindMatch(name, entries)
	if match.Kind == engine.MatchNone {
		return nil, false, nil
	}
	entry := match.Entry

	amount := used.Value
	if entry.Unit != used.Unit {
		from, okFrom := engine.ToCanonical(used.Unit)
		to, okTo := engine.ToCanonical(entry.Unit)
		if !okFrom || !okTo {
			return nil, false, nil
		}
		converted, ok := engine.Convert(used.Value, from, to)
		if !ok {
			return nil, false, nil
		}
		amount = converted
	}

	entry.Quantity -= amount
	if entry.Quantity < 0 {
		entry.Quantity = 0
	}
	if err := s.SaveInventoryEntry(entry); err != nil {
		return nil, false, err
	}
	return entry, true, nil
}

// ListGrocery returns the grocery list in insertion order.
func (s *Store) ListGrocery() ([]models.GroceryEntry, error) {
	var entries []models.GroceryEntry
	if err := s.db.Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list grocery: %w", err)
	}
	return entries, nil
}

// ReplaceGrocery swaps the stored grocery list for the given entries,
// keeping the IDs of surviving entries. Used after consolidation, which
// absorbs duplicates into their group representative.
func (s *Store) ReplaceGrocery(entries []models.GroceryEntry) error {
	tx := s.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin: %w", tx.Error)
	}
	if err := tx.Unscoped().Delete(&models.GroceryEntry{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("clear grocery: %w", err)
	}
	for i := range entries {
		if err := tx.Create(&entries[i]).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("write grocery entry: %w", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
