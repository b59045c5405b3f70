package entity

import (
	"time"
)

// CartItem is one line of a user's in-progress order. At most one row may
// exist per (user, food item) pair; repeat adds bump Quantity instead.
// No gorm.Model here: cart rows are hard-deleted, and a soft-delete marker
// would wedge the unique index when the same item is re-added later.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_food" json:"userId"`
	User   User `json:"-"`

	FoodItemID uint     `gorm:"uniqueIndex:idx_cart_user_food" json:"foodItemId"`
	FoodItem   FoodItem `json:"foodItem"`

	Quantity int `json:"quantity"`
}
