package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/models"
)

func quantity(v float64, unit string) *models.Quantity {
	return &models.Quantity{Value: v, Unit: unit}
}

func TestResolveConvertsAcrossUnits(t *testing.T) {
	inventory := []models.InventoryEntry{
		{Name: "milk", Quantity: 1, Unit: "l"},
	}
	req := models.IngredientRequest{Name: "milk", Quantity: quantity(250, "ml")}

	got := Resolve(req, inventory)

	assert.Equal(t, MatchExact, got.Match.Kind)
	assert.True(t, got.Sufficient)
	assert.False(t, got.Indeterminate)
	require.NotNil(t, got.Remaining)
	assert.InDelta(t, 750, got.Remaining.Value, 1e-6)
	assert.Equal(t, "ml", got.Remaining.Unit)
}

func TestResolveIdenticalUnits(t *testing.T) {
	inventory := []models.InventoryEntry{
		{Name: "flour", Quantity: 500, Unit: "g"},
	}

	got := Resolve(models.IngredientRequest{Name: "flour", Quantity: quantity(200, "g")}, inventory)
	assert.True(t, got.Sufficient)
	require.NotNil(t, got.Remaining)
	assert.InDelta(t, 300, got.Remaining.Value, 1e-6)
	assert.Equal(t, "g", got.Remaining.Unit)
}

func TestResolveInsufficientExposesRawDifference(t *testing.T) {
	inventory := []models.InventoryEntry{
		{Name: "flour", Quantity: 500, Unit: "g"},
	}

	got := Resolve(models.IngredientRequest{Name: "flour", Quantity: quantity(1, "kg")}, inventory)
	assert.False(t, got.Sufficient)
	assert.False(t, got.Indeterminate)
	require.NotNil(t, got.Remaining)
	// Raw difference in the request's unit; the caller clamps for display.
	assert.InDelta(t, -0.5, got.Remaining.Value, 1e-6)
	assert.Equal(t, "kg", got.Remaining.Unit)
}

func TestResolveWithoutRequestedQuantity(t *testing.T) {
	inventory := []models.InventoryEntry{
		{Name: "salt", Quantity: 100, Unit: "g"},
	}

	got := Resolve(models.IngredientRequest{Name: "salt"}, inventory)
	assert.True(t, got.Sufficient)
	require.NotNil(t, got.Remaining)
	assert.InDelta(t, 100, got.Remaining.Value, 1e-6)
}

func TestResolveNoMatch(t *testing.T) {
	inventory := []models.InventoryEntry{
		{Name: "flour", Quantity: 500, Unit: "g"},
	}

	got := Resolve(models.IngredientRequest{Name: "saffron", Quantity: quantity(1, "g")}, inventory)
	assert.Equal(t, MatchNone, got.Match.Kind)
	assert.False(t, got.Sufficient)
	assert.Nil(t, got.Remaining)
	assert.Equal(t, "no_match", got.Outcome())
}

func TestResolveIndeterminateUnits(t *testing.T) {
	inventory := []models.InventoryEntry{
		{Name: "garlic", Quantity: 1, Unit: "head"},
	}
	req := models.IngredientRequest{Name: "garlic", Quantity: quantity(2, "cloves")}

	optimistic := Resolver{Optimistic: true}.Resolve(req, inventory)
	assert.True(t, optimistic.Indeterminate)
	assert.True(t, optimistic.Sufficient)
	assert.Nil(t, optimistic.Remaining)
	assert.Equal(t, "indeterminate", optimistic.Outcome())

	strict := Resolver{Optimistic: false}.Resolve(req, inventory)
	assert.True(t, strict.Indeterminate)
	assert.False(t, strict.Sufficient)
}

func TestResolveIdenticalUnknownUnits(t *testing.T) {
	// Unknown units still compare when the strings agree.
	inventory := []models.InventoryEntry{
		{Name: "spinach", Quantity: 3, Unit: "handful"},
	}

	got := Resolve(models.IngredientRequest{Name: "spinach", Quantity: quantity(1, "handful")}, inventory)
	assert.True(t, got.Sufficient)
	assert.False(t, got.Indeterminate)
	require.NotNil(t, got.Remaining)
	assert.InDelta(t, 2, got.Remaining.Value, 1e-6)
}

func TestResolveCountUnitSynonyms(t *testing.T) {
	// "clove" and "cloves" normalize to the same canonical count unit.
	inventory := []models.InventoryEntry{
		{Name: "garlic", Quantity: 5, Unit: "cloves"},
	}

	got := Resolve(models.IngredientRequest{Name: "garlic", Quantity: quantity(2, "clove")}, inventory)
	assert.True(t, got.Sufficient)
	assert.False(t, got.Indeterminate)
	require.NotNil(t, got.Remaining)
	assert.InDelta(t, 3, got.Remaining.Value, 1e-6)
}
