package model

import "time"

// WishlistItem links a user to a property they saved.
// The composite unique index rejects duplicate (user, property) pairs.
type WishlistItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_wishlist_user_property"`
	PropertyID uint      `json:"property_id" gorm:"not null;uniqueIndex:idx_wishlist_user_property"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}
