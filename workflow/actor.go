package workflow

import "food-ordering-api/models"

// Actor identifies who is performing a workflow operation. Authorization is
// a capability check over the role variant plus ownership, never a string
// comparison against request input.
type Actor struct {
	ID   uint
	Role models.UserRole
}

// CanManagePayment reports whether the actor may verify or reject the given
// payment: admins always, restaurants only for their own payments.
func (a Actor) CanManagePayment(p *models.Payment) bool {
	switch a.Role {
	case models.RoleAdmin:
		return true
	case models.RoleRestaurant:
		return a.ID == p.RestaurantID
	}
	return false
}

// CanFulfillOrder reports whether the actor may advance the given order
// through fulfillment. Only the owning restaurant can.
func (a Actor) CanFulfillOrder(o *models.Order) bool {
	return a.Role == models.RoleRestaurant && a.ID == o.RestaurantID
}
