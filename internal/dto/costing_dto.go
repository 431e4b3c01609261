package dto

import "github.com/shopspring/decimal"

// CostLine is one resolvable composition line in a cost report.
// Costs are rounded to 2 decimal places at this boundary only; the engine
// sums at full precision.
type CostLine struct {
	IngredientID   string          `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	QuantityUsed   decimal.Decimal `json:"quantity_used"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	LineCost       decimal.Decimal `json:"line_cost"`
}

// RecipeCostResponse is the single-recipe cost report.
type RecipeCostResponse struct {
	RecipeID   string          `json:"recipe_id"`
	RecipeName string          `json:"recipe_name"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	Lines      []CostLine      `json:"ingredient_breakdown"`
}

// RecipeProfitResponse extends the cost report with the linked product's
// price. SellingPrice and Profit are nil — not zero — when the recipe has no
// linked product; absence is semantically distinct from a zero-profit dish.
type RecipeProfitResponse struct {
	RecipeID     string           `json:"recipe_id"`
	RecipeName   string           `json:"recipe_name"`
	TotalCost    decimal.Decimal  `json:"total_cost"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	Profit       *decimal.Decimal `json:"profit"`
	Lines        []CostLine       `json:"ingredient_breakdown"`
}
