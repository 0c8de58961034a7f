package models

import "time"

// OrderItem is a single line within an order.
type OrderItem struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

// Address is where an order ships to, with a contact email.
type Address struct {
	Place string `json:"place" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Order represents a customer order.
type Order struct {
	ID        string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string      `json:"userId" gorm:"index;type:varchar(36)" validate:"required"`
	Items     []OrderItem `json:"orderItems" gorm:"serializer:json" validate:"required,min=1,dive"`
	Amount    float64     `json:"amount" validate:"gte=0"`
	Status    string      `json:"status" gorm:"type:varchar(32)"` // e.g. "pending", "processing", "shipped", "delivered", "cancelled"
	Address   Address     `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
