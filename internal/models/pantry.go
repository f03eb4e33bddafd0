package models

import (
	"github.com/jinzhu/gorm"
)

// InventoryEntry represents a single pantry item as supplied (and stored) by
// the host application. The engine treats entries as immutable input; updated
// quantities are written back by the store, never mutated in place.
type InventoryEntry struct {
	gorm.Model
	Name     string
	Quantity float64
	Unit     string
	Location string
	Category string
	Notes    string
}

// TableName sets the table name for InventoryEntry
func (InventoryEntry) TableName() string {
	return "inventory_entries"
}

// InventoryCategory represents the category of an inventory entry
type InventoryCategory string

const (
	// Inventory categories
	CategoryProtein    InventoryCategory = "protein"
	CategoryProduce    InventoryCategory = "produce"
	CategoryDairy      InventoryCategory = "dairy"
	CategoryDryGoods   InventoryCategory = "dry_goods"
	CategorySpices     InventoryCategory = "spices"
	CategoryCondiments InventoryCategory = "condiments"
	CategoryBeverages  InventoryCategory = "beverages"
	CategoryBaking     InventoryCategory = "baking"
)

// InventoryLocation represents the storage location of an inventory entry
type InventoryLocation string

const (
	// Storage locations
	LocationPantry       InventoryLocation = "pantry"
	LocationRefrigerator InventoryLocation = "refrigerator"
	LocationFreezer      InventoryLocation = "freezer"
	LocationSpiceRack    InventoryLocation = "spice_rack"
	LocationCounter      InventoryLocation = "counter"
)
