package dto

import "github.com/shopspring/decimal"

// ─── Recipe ──────────────────────────────────────────────────────────────────

type CreateRecipeRequest struct {
	ProductID string                   `json:"product_id" validate:"required,uuid"`
	Name      string                   `json:"name"       validate:"required,min=2,max=120"`
	Steps     []string                 `json:"steps"`
	Servings  *int                     `json:"servings"   validate:"omitempty,min=1"`
	Groups    []IngredientGroupRequest `json:"groups"     validate:"dive"`
	Lines     []IngredientLineRequest  `json:"lines"      validate:"dive"`
}

type IngredientGroupRequest struct {
	Title string             `json:"title" validate:"required"`
	Items []GroupItemRequest `json:"items" validate:"dive"`
}

type GroupItemRequest struct {
	IngredientID string `json:"ingredient_id" validate:"required,uuid"`
	// CustomQuantity is free text ("150g", "2 tbsp"); never validated here —
	// the qualification rule parses it leniently
	CustomQuantity string `json:"custom_quantity"`
}

type IngredientLineRequest struct {
	IngredientID string          `json:"ingredient_id" validate:"required,uuid"`
	QuantityUsed decimal.Decimal `json:"quantity_used" validate:"required"`
	Unit         string          `json:"unit"`
}

type UpdateRecipeRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=2,max=120"`
	Steps    []string `json:"steps"`
	Servings *int     `json:"servings" validate:"omitempty,min=1"`
}

type RecipeResponse struct {
	ID        string                    `json:"id"`
	ProductID string                    `json:"product_id"`
	Name      string                    `json:"name"`
	Steps     []string                  `json:"steps,omitempty"`
	Servings  *int                      `json:"servings,omitempty"`
	ImageURL  *string                   `json:"image_url,omitempty"`
	Groups    []IngredientGroupResponse `json:"groups,omitempty"`
	Featured  bool                      `json:"featured"`
}

type IngredientGroupResponse struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Items []GroupItemResponse `json:"items"`
}

type GroupItemResponse struct {
	ID             string `json:"id"`
	IngredientID   string `json:"ingredient_id"`
	CustomQuantity string `json:"custom_quantity"`
}

type IngredientLineResponse struct {
	ID           string          `json:"id"`
	IngredientID string          `json:"ingredient_id"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
	Unit         string          `json:"unit"`
}

// ─── Variants ────────────────────────────────────────────────────────────────

type CreateVariantRequest struct {
	Name  string   `json:"name"  validate:"required,min=2,max=120"`
	Note  *string  `json:"note"`
	Steps []string `json:"steps"`
}

type UpdateVariantRequest struct {
	Name  *string  `json:"name"  validate:"omitempty,min=2,max=120"`
	Note  *string  `json:"note"`
	Steps []string `json:"steps"`
}

type VariantResponse struct {
	ID       string   `json:"id"`
	RecipeID string   `json:"recipe_id"`
	Name     string   `json:"name"`
	Note     *string  `json:"note,omitempty"`
	Steps    []string `json:"steps,omitempty"`
	Active   bool     `json:"active"`
}

// ─── Dish of the day ─────────────────────────────────────────────────────────

type DishOfTheDayResponse struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	Status    string           `json:"status"`
	ProductID string           `json:"product_id"`
	Product   *ProductResponse `json:"product,omitempty"`
}
