package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User stores system users with role-based access.
// Role: "superadmin" | "admin" | "employee"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	// RestaurantID scopes admins and employees to one restaurant; nil for superadmins
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`
	// Salary is only meaningful for employees
	Salary    *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Active    bool             `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID"`
}
