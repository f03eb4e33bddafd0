package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "larder.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestInventoryRoundTrip(t *testing.T) {
	st := openTestStore(t)

	entry := &models.InventoryEntry{
		Name:     "milk",
		Quantity: 1,
		Unit:     "l",
		Location: string(models.LocationRefrigerator),
		Category: string(models.CategoryDairy),
	}
	require.NoError(t, st.SaveInventoryEntry(entry))

	entries, err := st.ListInventory()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "milk", entries[0].Name)
	assert.Equal(t, 1.0, entries[0].Quantity)
}

func TestDeplete(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.SaveInventoryEntry(&models.InventoryEntry{
		Name: "milk", Quantity: 1, Unit: "l",
	}))

	entry, ok, err := st.Deplete("milk", models.Quantity{Value: 250, Unit: "ml"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.75, entry.Quantity, 1e-6)

	// Stock never goes negative.
	entry, ok, err = st.Deplete("milk", models.Quantity{Value: 2, Unit: "l"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, entry.Quantity)
}

func TestDepleteNoMatch(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.SaveInventoryEntry(&models.InventoryEntry{
		Name: "flour", Quantity: 500, Unit: "g",
	}))

	_, ok, err := st.Deplete("saffron", models.Quantity{Value: 1, Unit: "g"})
	require.NoError(t, err)
	assert.False(t, ok)

	// Irreconcilable units refuse rather than guessing.
	_, ok, err = st.Deplete("flour", models.Quantity{Value: 1, Unit: "cup"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReplaceGrocery(t *testing.T) {
	st := openTestStore(t)

	initial := []models.GroceryEntry{
		{Name: "salt", Amount: "1", Unit: "tsp"},
		{Name: "salt", Amount: "2", Unit: "tsp"},
	}
	require.NoError(t, st.ReplaceGrocery(initial))

	stored, err := st.ListGrocery()
	require.NoError(t, err)
	require.Len(t, stored, 2)

	require.NoError(t, st.ReplaceGrocery([]models.GroceryEntry{
		{Name: "salt", Amount: "3", Unit: "tsp"},
	}))

	stored, err = st.ListGrocery()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "3", stored[0].Amount)
}
