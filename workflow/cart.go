package workflow

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"food-ordering-api/models"
)

// CartLine is one entry of a checkout cart: a snapshot of the food item at
// the time the customer added it. UnitPrice and RestaurantID are carried by
// the caller rather than re-read at checkout, so the customer pays the price
// they saw; the catalog is still consulted inside the placement transaction
// to confirm the item exists and the restaurant claim matches.
type CartLine struct {
	FoodItemID   uint
	Quantity     int
	UnitPrice    decimal.Decimal
	RestaurantID uint
}

// Cart is an ordered sequence of lines, owned by the caller. It replaces
// ambient session state: handlers build one per request and pass it in.
type Cart []CartLine

// Total sums unit price times quantity over all lines.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// BuildCart resolves item ids and quantities into cart lines with price and
// restaurant snapshots taken from the catalog.
func BuildCart(db *gorm.DB, items []CartItemRequest) (Cart, error) {
	cart := make(Cart, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		var food models.FoodItem
		if err := db.First(&food, it.FoodItemID).Error; err != nil {
			return nil, fmt.Errorf("%w: food item %d", ErrNotFound, it.FoodItemID)
		}
		cart = append(cart, CartLine{
			FoodItemID:   food.ID,
			Quantity:     it.Quantity,
			UnitPrice:    food.Price,
			RestaurantID: food.RestaurantID,
		})
	}
	return cart, nil
}

// CartItemRequest is the caller-supplied shape of one cart entry.
type CartItemRequest struct {
	FoodItemID uint `json:"food_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}
