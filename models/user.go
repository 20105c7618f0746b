package models

import "time"

// UserRole defines the closed set of roles in the system
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleCustomer   UserRole = "customer"
	RoleRestaurant UserRole = "restaurant"
)

// AccountStatus defines the moderation state of an account
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountPending   AccountStatus = "pending"
	AccountSuspended AccountStatus = "suspended"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name" gorm:"not null"`
	Email        string        `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string        `json:"phone" gorm:"uniqueIndex;not null"`
	Location     string        `json:"location" gorm:"not null"`
	PasswordHash string        `json:"-" gorm:"not null"`
	Role         UserRole      `json:"role" gorm:"not null;default:'customer'"`
	Status       AccountStatus `json:"status" gorm:"not null;default:'active'"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
