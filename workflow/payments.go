package workflow

import (
	"fmt"

	"gorm.io/gorm"

	"food-ordering-api/models"
	"food-ordering-api/statemachine"
)

// VerifyPayment marks a pending payment verified and its order accepted, in
// one transaction. Actor must be an admin or the restaurant the payment
// belongs to. A payment that is no longer pending yields ErrStateConflict
// and no mutation, which makes a second verification attempt a safe no-op.
func VerifyPayment(db *gorm.DB, paymentID uint, actor Actor) error {
	return settlePayment(db, paymentID, actor, models.PaymentVerified, models.StatusAccepted)
}

// RejectPayment marks a pending payment not-approved and cancels its order.
// The admin path records "rejected", the restaurant path "failed"; the two
// labels are kept distinct to match existing reporting, but both are
// terminal and both cancel the order.
func RejectPayment(db *gorm.DB, paymentID uint, actor Actor) error {
	terminal := models.PaymentRejected
	if actor.Role == models.RoleRestaurant {
		terminal = models.PaymentFailed
	}
	return settlePayment(db, paymentID, actor, terminal, models.StatusCancelled)
}

func settlePayment(db *gorm.DB, paymentID uint, actor Actor, paymentStatus models.PaymentStatus, orderStatus models.OrderStatus) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return fmt.Errorf("%w: payment %d", ErrNotFound, paymentID)
		}
		if !actor.CanManagePayment(&payment) {
			return fmt.Errorf("%w: payment %d belongs to restaurant %d",
				ErrUnauthorized, paymentID, payment.RestaurantID)
		}
		if payment.Status != models.PaymentPending {
			return fmt.Errorf("%w: payment %d is %s, not pending",
				ErrStateConflict, paymentID, payment.Status)
		}

		var order models.Order
		if err := tx.First(&order, payment.OrderID).Error; err != nil {
			return fmt.Errorf("%w: order %d", ErrNotFound, payment.OrderID)
		}
		if err := statemachine.CanTransition(order.Status, orderStatus, statemachine.ActorPayment); err != nil {
			return fmt.Errorf("%w: %v", ErrStateConflict, err)
		}

		// Guard the update on the pending status so a concurrent settlement
		// of the same payment touches zero rows and conflicts instead of
		// double-applying.
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", paymentID, models.PaymentPending).
			Update("status", paymentStatus)
		if res.Error != nil {
			return fmt.Errorf("update payment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: payment %d is no longer pending", ErrStateConflict, paymentID)
		}

		if err := tx.Model(&order).Update("status", orderStatus).Error; err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
}
