package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/models"
)

func grocery(name, amount, unit string) models.GroceryEntry {
	return models.GroceryEntry{Name: name, Amount: amount, Unit: unit}
}

func TestConsolidateMergesDuplicates(t *testing.T) {
	entries := []models.GroceryEntry{
		grocery("salt", "1", "tsp"),
		grocery("Salt", "2", "tsp"),
	}

	got := Consolidate(entries)

	require.Len(t, got, 1)
	assert.Equal(t, "salt", got[0].Name)
	assert.Equal(t, "3", got[0].Amount)
	assert.Equal(t, "tsp", got[0].Unit)
}

func TestConsolidateUnitSynonymsAndLongestUnit(t *testing.T) {
	entries := []models.GroceryEntry{
		grocery("flour", "1", "cup"),
		grocery("flour", "1 1/2", "cups"),
	}

	got := Consolidate(entries)

	require.Len(t, got, 1)
	assert.Equal(t, "2.5", got[0].Amount)
	// The most descriptive (longest) unit string in the group wins.
	assert.Equal(t, "cups", got[0].Unit)
}

func TestConsolidateNeverMergesUnitless(t *testing.T) {
	entries := []models.GroceryEntry{
		grocery("eggs", "2", ""),
		grocery("eggs", "1", ""),
	}

	got := Consolidate(entries)
	assert.Len(t, got, 2)
}

func TestConsolidateKeepsCompletedApart(t *testing.T) {
	done := grocery("milk", "1", "l")
	done.Completed = true
	entries := []models.GroceryEntry{
		grocery("milk", "1", "l"),
		done,
	}

	got := Consolidate(entries)
	assert.Len(t, got, 2)
}

func TestConsolidatePreservesOrderAndIdentity(t *testing.T) {
	first := grocery("sugar", "1", "cup")
	first.ID = 11
	middle := grocery("rice", "500", "g")
	middle.ID = 12
	dup := grocery("sugar", "2", "cup")
	dup.ID = 13

	got := Consolidate([]models.GroceryEntry{first, middle, dup})

	require.Len(t, got, 2)
	// The first entry of each group is the representative, in place.
	assert.Equal(t, uint(11), got[0].ID)
	assert.Equal(t, "3", got[0].Amount)
	assert.Equal(t, uint(12), got[1].ID)
}

func TestConsolidateIdempotent(t *testing.T) {
	entries := []models.GroceryEntry{
		grocery("salt", "1", "tsp"),
		grocery("salt", "2", "tsp"),
		grocery("eggs", "2", ""),
		grocery("olive oil", "1/4", "cup"),
		grocery("olive oil", "2", "tbsp"),
	}

	once := Consolidate(entries)
	twice := Consolidate(once)
	assert.Equal(t, once, twice)
}

func TestConsolidateDoesNotMutateInput(t *testing.T) {
	entries := []models.GroceryEntry{
		grocery("salt", "1", "tsp"),
		grocery("salt", "2", "tsp"),
	}

	Consolidate(entries)
	assert.Equal(t, "1", entries[0].Amount)
	assert.Equal(t, "2", entries[1].Amount)
}

func TestAddOrMergeAppendsNewItem(t *testing.T) {
	list := []models.GroceryEntry{grocery("salt", "1", "tsp")}

	got := AddOrMerge(list, grocery("pepper", "1", "tsp"))

	require.Len(t, got, 2)
	assert.Equal(t, "pepper", got[1].Name)
	// The input slice is untouched.
	assert.Len(t, list, 1)
}

func TestAddOrMergeSameUnit(t *testing.T) {
	list := []models.GroceryEntry{grocery("salt", "1", "tsp")}

	got := AddOrMerge(list, grocery("Salt", "2", "tsp"))

	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].Amount)
	assert.Equal(t, "tsp", got[0].Unit)
}

func TestAddOrMergeEmptyUnitIsCompatible(t *testing.T) {
	// Unlike Consolidate, a missing unit merges with anything here.
	list := []models.GroceryEntry{grocery("sugar", "1", "cup")}

	got := AddOrMerge(list, grocery("sugar", "2", ""))

	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].Amount)
	assert.Equal(t, "cup", got[0].Unit)

	list = []models.GroceryEntry{grocery("sugar", "1", "")}
	got = AddOrMerge(list, grocery("sugar", "2", "cups"))

	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].Amount)
	assert.Equal(t, "cups", got[0].Unit)
}

func TestAddOrMergeConvertibleUnits(t *testing.T) {
	list := []models.GroceryEntry{grocery("milk", "1", "l")}

	got := AddOrMerge(list, grocery("milk", "500", "ml"))

	require.Len(t, got, 1)
	assert.Equal(t, "1.5", got[0].Amount)
	assert.Equal(t, "l", got[0].Unit)
}

func TestAddOrMergeIncompatibleUnitsConcatenate(t *testing.T) {
	list := []models.GroceryEntry{grocery("butter", "500", "g")}

	got := AddOrMerge(list, grocery("butter", "2", "cups"))

	require.Len(t, got, 1)
	assert.Equal(t, "500 g + 2 cups", got[0].Amount)
	assert.Empty(t, got[0].Unit)
}

func TestAddOrMergeSkipsCompletedEntries(t *testing.T) {
	done := grocery("milk", "1", "l")
	done.Completed = true
	list := []models.GroceryEntry{done}

	got := AddOrMerge(list, grocery("milk", "1", "l"))

	require.Len(t, got, 2)
	assert.False(t, got[1].Completed)
}
