package model

import (
	"time"

	"github.com/google/uuid"
)

// Menu groups categories for one restaurant (e.g. "Lunch", "Dinner").
type Menu struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"not null;uniqueIndex:idx_menu_restaurant_name"`
	Description  *string
	ImageURL     *string
	Active       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
	Categories []Category  `gorm:"foreignKey:MenuID"`
}

// Category classifies products inside a menu.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MenuID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Description *string
	ImageURL    *string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Menu     *Menu     `gorm:"foreignKey:MenuID"`
	Products []Product `gorm:"foreignKey:CategoryID"`
}

// TableName overrides GORM's default pluralization (categorys → categories).
func (Category) TableName() string { return "categories" }
