package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FoodItem is a menu entry owned by one restaurant account.
// Price is stored as an exact decimal; no float arithmetic anywhere on money.
type FoodItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   User            `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	ImageURL     string          `json:"image_url"`
	Category     string          `json:"category" gorm:"not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
