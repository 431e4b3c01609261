package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe describes how a product is prepared. Every recipe belongs to
// exactly one product; the product side of the link is optional.
type Recipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name      string    `gorm:"index;not null"`
	Steps     []string  `gorm:"serializer:json"`
	Servings  *int
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Product  *Product          `gorm:"foreignKey:ProductID"`
	Groups   []IngredientGroup `gorm:"foreignKey:RecipeID"`
	Lines    []IngredientLine  `gorm:"foreignKey:RecipeID"`
	Variants []RecipeVariant   `gorm:"foreignKey:RecipeID"`
}

// IngredientGroup is a titled section of a recipe ("Sauce", "Garnish").
// Items carry free-text quantities; only the dish-of-the-day rule parses them.
type IngredientGroup struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"not null"`
	// Position preserves authoring order — qualification short-circuits in it
	Position  int `gorm:"not null;default:0"`
	CreatedAt time.Time

	Items []GroupItem `gorm:"foreignKey:GroupID"`
}

// GroupItem references an ingredient with an author-supplied quantity string
// such as "150g" or "2 tbsp". The text is never validated at write time.
type GroupItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GroupID        uuid.UUID `gorm:"type:uuid;not null;index"`
	IngredientID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomQuantity string
	Position       int `gorm:"not null;default:0"`
	CreatedAt      time.Time

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

// IngredientLine is one costed composition line of a recipe: a numeric
// quantity of one ingredient. Lines live and die independently of both the
// recipe and the ingredient; the costing engine drops lines whose ingredient
// no longer resolves instead of failing.
type IngredientLine struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipeID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	IngredientID uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuantityUsed decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit         string          `gorm:"not null;default:'g'"`
	CreatedAt    time.Time

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

// TableName overrides the default (ingredient_lines reads better than the
// GORM guess for a struct embedded in the recipe aggregate).
func (IngredientLine) TableName() string { return "recipe_ingredient_lines" }

// RecipeVariant is an alternate preparation of the same product
// (e.g. "gluten free", "extra spicy").
type RecipeVariant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Note      *string
	Steps     []string `gorm:"serializer:json"`
	Active    bool     `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
