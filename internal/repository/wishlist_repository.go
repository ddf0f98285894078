package repository

import (
	"context"

	"gorm.io/gorm"

	"realty/internal/model"
)

// WishlistRepository defines wishlist persistence operations.
type WishlistRepository interface {
	Create(ctx context.Context, item *model.WishlistItem) error
	Find(ctx context.Context, userID, propertyID uint) (*model.WishlistItem, error)
	Delete(ctx context.Context, userID, propertyID uint) error
	ListByUser(ctx context.Context, userID uint) ([]model.WishlistItem, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository.
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Create(ctx context.Context, item *model.WishlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wishlistRepository) Find(ctx context.Context, userID, propertyID uint) (*model.WishlistItem, error) {
	var item model.WishlistItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wishlistRepository) Delete(ctx context.Context, userID, propertyID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&model.WishlistItem{}).Error
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID uint) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	if err := r.db.WithContext(ctx).Preload("Property").
		Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
