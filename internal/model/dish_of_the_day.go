package model

import (
	"time"

	"github.com/google/uuid"
)

// Featured-entry statuses.
const (
	DishStatusActive   = "Active"
	DishStatusInactive = "Inactive"
)

// DishOfTheDay marks a product as the currently promoted dish. Rows are
// created by the qualification rule at recipe creation, never by clients.
// A partial unique index (see infra schema patches) guarantees at most one
// Active row per product, so concurrent promotions fail safely.
type DishOfTheDay struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date      time.Time `gorm:"not null"`
	Status    string    `gorm:"type:varchar(10);not null;default:'Active'"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName keeps the table readable (dish_of_the_days is what GORM guesses).
func (DishOfTheDay) TableName() string { return "dish_of_the_day" }
