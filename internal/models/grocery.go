package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/jinzhu/gorm"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// GroceryEntry represents one line of a grocery list. Amount is kept as the
// raw string the user entered ("1 1/2", "2-3"); the engine parses it on demand
// so consolidation can sum quantities without losing the original text shape.
type GroceryEntry struct {
	gorm.Model
	Name      string
	Amount    string
	Unit      string
	Category  string
	Completed bool
	Tags      StringSlice `gorm:"type:text"`
}

// TableName sets the table name for GroceryEntry
func (GroceryEntry) TableName() string {
	return "grocery_entries"
}
