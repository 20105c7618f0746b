package workflow

import (
	"fmt"

	"gorm.io/gorm"

	"food-ordering-api/models"
	"food-ordering-api/statemachine"
)

// AdvanceOrder moves an order along the fulfillment path
// (accepted -> preparing -> ready -> delivered) or to cancelled from any
// non-terminal state. Only the owning restaurant may do this; any target
// state outside the machine is rejected without mutation. There is no
// timeout or background reaper: an order a restaurant never advances stays
// where it is.
func AdvanceOrder(db *gorm.DB, orderID uint, newStatus models.OrderStatus, actor Actor) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		if !actor.CanFulfillOrder(&order) {
			return fmt.Errorf("%w: order %d belongs to restaurant %d",
				ErrUnauthorized, orderID, order.RestaurantID)
		}
		if err := statemachine.CanTransition(order.Status, newStatus, statemachine.ActorRestaurant); err != nil {
			return fmt.Errorf("%w: %v", ErrStateConflict, err)
		}

		res := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", orderID, order.Status).
			Update("status", newStatus)
		if res.Error != nil {
			return fmt.Errorf("update order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: order %d changed state concurrently", ErrStateConflict, orderID)
		}
		return nil
	})
}
