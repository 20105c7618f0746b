package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the verification state of a payment claim
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	// Rejected is the admin-side terminal label, Failed the restaurant-side
	// one. Both mean the payment was not approved; downstream handling is
	// identical, but the labels are kept distinct on purpose.
	PaymentRejected PaymentStatus = "rejected"
	PaymentFailed   PaymentStatus = "failed"
)

// PaymentMethodBkash is the only supported method: a customer-submitted
// claim of an out-of-band bKash transfer, verified manually.
const PaymentMethodBkash = "bkash"

type Payment struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	OrderID        uint            `json:"order_id" gorm:"not null;index"`
	CustomerID     uint            `json:"customer_id" gorm:"not null;index"`
	RestaurantID   uint            `json:"restaurant_id" gorm:"not null;index"`
	TransactionRef string          `json:"transaction_ref" gorm:"uniqueIndex;not null"`
	PayerPhone     string          `json:"payer_phone" gorm:"not null"`
	Method         string          `json:"method" gorm:"not null;default:'bkash'"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Status         PaymentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
