package models

import "time"

// Cart is a single product held by a user, with a quantity. A user's cart is
// the set of Cart rows owned by them.
type Cart struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID string    `json:"productId" gorm:"type:varchar(36)" validate:"required"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
