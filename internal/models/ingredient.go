package models

// Quantity is an amount paired with a unit string. The unit may be empty for
// unitless entries ("2 eggs"); value is never negative in user-facing contexts.
type Quantity struct {
	Value float64
	Unit  string
}

// IngredientRequest represents a recipe's need for one ingredient. Quantity is
// nil when the recipe names an ingredient without an amount ("salt to taste").
type IngredientRequest struct {
	Name     string
	Quantity *Quantity
}
