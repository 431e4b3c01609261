package dto

import "github.com/shopspring/decimal"

// ─── Ingredient ──────────────────────────────────────────────────────────────

type CreateIngredientRequest struct {
	Name           string           `json:"name"             validate:"required,min=2,max=120"`
	Unit           string           `json:"unit"`
	Price          decimal.Decimal  `json:"price"            validate:"min=0"`
	QuantityOnHand decimal.Decimal  `json:"quantity_on_hand" validate:"min=0"`
	MinQty         decimal.Decimal  `json:"min_qty"          validate:"min=0"`
	MaxQty         *decimal.Decimal `json:"max_qty"`
}

type UpdateIngredientRequest struct {
	Name   *string          `json:"name"    validate:"omitempty,min=2,max=120"`
	Unit   *string          `json:"unit"`
	Price  *decimal.Decimal `json:"price"   validate:"omitempty,min=0"`
	MinQty *decimal.Decimal `json:"min_qty" validate:"omitempty,min=0"`
	MaxQty *decimal.Decimal `json:"max_qty"`
}

type AdjustQuantityRequest struct {
	Delta  decimal.Decimal `json:"delta"  validate:"required"`
	Reason string          `json:"reason"`
}

type IngredientResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Unit           string           `json:"unit"`
	Price          decimal.Decimal  `json:"price"`
	QuantityOnHand decimal.Decimal  `json:"quantity_on_hand"`
	MinQty         decimal.Decimal  `json:"min_qty"`
	MaxQty         *decimal.Decimal `json:"max_qty,omitempty"`
	ImageURL       *string          `json:"image_url,omitempty"`
	Active         bool             `json:"active"`
	BelowMin       bool             `json:"below_min"`
}

// ─── Utensil ─────────────────────────────────────────────────────────────────

type CreateUtensilRequest struct {
	Name        string  `json:"name"     validate:"required,min=2,max=120"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	Description *string `json:"description"`
}

type UpdateUtensilRequest struct {
	Name        *string `json:"name"     validate:"omitempty,min=2,max=120"`
	Quantity    *int    `json:"quantity" validate:"omitempty,min=0"`
	Description *string `json:"description"`
}

type UtensilResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Active      bool    `json:"active"`
}
