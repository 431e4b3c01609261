package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ingredient is a stock-tracked raw material with a unit price.
// Invariants (service-enforced): Price >= 0, QuantityOnHand >= 0, MinQty <= MaxQty.
type Ingredient struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string          `gorm:"uniqueIndex;not null"`
	Unit           string          `gorm:"not null;default:'g'"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	QuantityOnHand decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	MinQty         decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	// MaxQty is the declared maximum stock level; the dish-of-the-day rule
	// reads it as a proxy for per-serving allotment. Nullable: unset means
	// the ingredient never contributes to qualification.
	MaxQty    *decimal.Decimal `gorm:"type:decimal(12,3)"`
	ImageURL  *string
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Utensil is non-consumable kitchen equipment referenced by recipes.
type Utensil struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Quantity    int       `gorm:"not null;default:0"`
	Description *string
	ImageURL    *string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
