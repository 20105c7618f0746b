package workflow

import (
	"fmt"

	"gorm.io/gorm"

	"food-ordering-api/models"
)

// DeleteAccount removes a non-admin account and everything that references
// it, in one transaction. Restaurants lose their food items, their orders
// and the payments on those orders; customers lose their orders and
// payments. Admin accounts are never deletable through this path.
func DeleteAccount(db *gorm.DB, accountID uint, actor Actor) error {
	if actor.Role != models.RoleAdmin {
		return fmt.Errorf("%w: only admins may delete accounts", ErrUnauthorized)
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, accountID).Error; err != nil {
			return fmt.Errorf("%w: account %d", ErrNotFound, accountID)
		}
		if user.Role == models.RoleAdmin {
			return fmt.Errorf("%w: admin accounts cannot be deleted", ErrUnauthorized)
		}

		switch user.Role {
		case models.RoleRestaurant:
			if err := tx.Where("restaurant_id = ?", user.ID).Delete(&models.Payment{}).Error; err != nil {
				return fmt.Errorf("delete restaurant payments: %w", err)
			}
			if err := tx.Where("restaurant_id = ?", user.ID).Delete(&models.Order{}).Error; err != nil {
				return fmt.Errorf("delete restaurant orders: %w", err)
			}
			if err := tx.Where("restaurant_id = ?", user.ID).Delete(&models.FoodItem{}).Error; err != nil {
				return fmt.Errorf("delete food items: %w", err)
			}
		case models.RoleCustomer:
			if err := tx.Where("customer_id = ?", user.ID).Delete(&models.Payment{}).Error; err != nil {
				return fmt.Errorf("delete customer payments: %w", err)
			}
			if err := tx.Where("customer_id = ?", user.ID).Delete(&models.Order{}).Error; err != nil {
				return fmt.Errorf("delete customer orders: %w", err)
			}
		}

		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("delete account: %w", err)
		}
		return nil
	})
}

// DeleteFoodItem removes a food item together with the orders that reference
// it and their payments, in one transaction.
func DeleteFoodItem(db *gorm.DB, itemID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var item models.FoodItem
		if err := tx.First(&item, itemID).Error; err != nil {
			return fmt.Errorf("%w: food item %d", ErrNotFound, itemID)
		}

		orderIDs := tx.Model(&models.Order{}).Select("id").Where("food_item_id = ?", itemID)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.Payment{}).Error; err != nil {
			return fmt.Errorf("delete dependent payments: %w", err)
		}
		if err := tx.Where("food_item_id = ?", itemID).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("delete dependent orders: %w", err)
		}
		if err := tx.Delete(&item).Error; err != nil {
			return fmt.Errorf("delete food item: %w", err)
		}
		return nil
	})
}

// DeleteOrder removes an order and its payment in one transaction.
func DeleteOrder(db *gorm.DB, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		if err := tx.Where("order_id = ?", orderID).Delete(&models.Payment{}).Error; err != nil {
			return fmt.Errorf("delete payment: %w", err)
		}
		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}
