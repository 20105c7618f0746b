package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transition may leave s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type Order struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	CustomerID   uint            `json:"customer_id" gorm:"not null;index"`
	Customer     User            `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	FoodItemID   uint            `json:"food_item_id" gorm:"not null;index"`
	FoodItem     FoodItem        `json:"food_item,omitempty" gorm:"foreignKey:FoodItemID"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null;index"`
	Quantity     int             `json:"quantity" gorm:"not null"`
	TotalPrice   decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	Status       OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentID    *uint           `json:"payment_id,omitempty"`
	Payment      *Payment        `json:"payment,omitempty" gorm:"foreignKey:PaymentID"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
