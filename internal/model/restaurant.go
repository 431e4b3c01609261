package model

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is the top-level tenant entity. Menus, staff and media
// namespaces all hang off a restaurant.
type Restaurant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Address   *string
	Phone     *string
	Email     *string
	LogoURL   *string
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
