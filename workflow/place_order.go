package workflow

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"food-ordering-api/models"
)

// PlaceOrder checks out a cart: one Order plus one linked Payment per cart
// line, all inside a single transaction. If any line fails, nothing is
// persisted and the caller keeps the cart for retry.
//
// The customer supplies one transaction reference for the whole checkout.
// Each payment stores "{ref}_{orderID}" so the unique index on transaction
// references holds across the lines of one checkout. A customer can reuse a
// base reference across unrelated checkouts; stronger duplicate detection is
// deliberately not attempted here.
func PlaceOrder(db *gorm.DB, customerID uint, cart Cart, transactionRef, payerPhone string) ([]uint, error) {
	if len(cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}
	if transactionRef == "" {
		return nil, fmt.Errorf("%w: transaction reference is required", ErrValidation)
	}
	if payerPhone == "" {
		return nil, fmt.Errorf("%w: payer phone number is required", ErrValidation)
	}

	var orderIDs []uint
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, line := range cart {
			if line.Quantity < 1 {
				return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
			}
			if !line.UnitPrice.IsPositive() {
				return fmt.Errorf("%w: unit price must be positive", ErrValidation)
			}

			// The item may have been deleted since the cart was built.
			var food models.FoodItem
			if err := tx.First(&food, line.FoodItemID).Error; err != nil {
				return fmt.Errorf("%w: food item %d", ErrNotFound, line.FoodItemID)
			}
			if food.RestaurantID != line.RestaurantID {
				return fmt.Errorf("%w: food item %d does not belong to restaurant %d",
					ErrValidation, line.FoodItemID, line.RestaurantID)
			}

			total := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			order := models.Order{
				CustomerID:   customerID,
				FoodItemID:   line.FoodItemID,
				RestaurantID: line.RestaurantID,
				Quantity:     line.Quantity,
				TotalPrice:   total,
				Status:       models.StatusPending,
			}
			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("create order: %w", err)
			}

			payment := models.Payment{
				OrderID:        order.ID,
				CustomerID:     customerID,
				RestaurantID:   line.RestaurantID,
				TransactionRef: fmt.Sprintf("%s_%d", transactionRef, order.ID),
				PayerPhone:     payerPhone,
				Method:         models.PaymentMethodBkash,
				Amount:         total,
				Status:         models.PaymentPending,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return fmt.Errorf("create payment: %w", err)
			}

			if err := tx.Model(&order).Update("payment_id", payment.ID).Error; err != nil {
				return fmt.Errorf("link payment to order: %w", err)
			}
			orderIDs = append(orderIDs, order.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orderIDs, nil
}
