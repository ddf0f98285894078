package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"realty/internal/errors"
	"realty/internal/model"
	"realty/internal/policy"
	"realty/internal/repository"
)

// WishlistService handles a user's saved properties. All operations are
// scoped to the caller's own id.
type WishlistService interface {
	Add(ctx context.Context, actor policy.Actor, propertyID uint) (*model.WishlistItem, error)
	Remove(ctx context.Context, actor policy.Actor, propertyID uint) error
	List(ctx context.Context, actor policy.Actor) ([]model.WishlistItem, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	propertyRepo repository.PropertyRepository
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(wishlistRepo repository.WishlistRepository, propertyRepo repository.PropertyRepository) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		propertyRepo: propertyRepo,
	}
}

// Add saves an existing property to the caller's wishlist. Duplicate
// (user, property) pairs are rejected; the unique index backs the check.
func (s *wishlistService) Add(ctx context.Context, actor policy.Actor, propertyID uint) (*model.WishlistItem, error) {
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}

	if existing, err := s.wishlistRepo.Find(ctx, actor.ID, propertyID); err == nil && existing != nil {
		return nil, errors.ErrAlreadyInWishlist
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check wishlist item: %w", err)
	}

	item := &model.WishlistItem{
		UserID:     actor.ID,
		PropertyID: propertyID,
	}

	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create wishlist item: %w", err)
	}

	return item, nil
}

// Remove deletes a property from the caller's wishlist.
func (s *wishlistService) Remove(ctx context.Context, actor policy.Actor, propertyID uint) error {
	item, err := s.wishlistRepo.Find(ctx, actor.ID, propertyID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrWishlistItemNotFound
		}
		return fmt.Errorf("find wishlist item: %w", err)
	}

	if err := policy.CanAccessWishlistItem(actor, item); err != nil {
		return err
	}

	if err := s.wishlistRepo.Delete(ctx, actor.ID, propertyID); err != nil {
		return fmt.Errorf("delete wishlist item: %w", err)
	}

	return nil
}

// List returns the caller's wishlist with each item's property resolved
// for display.
func (s *wishlistService) List(ctx context.Context, actor policy.Actor) ([]model.WishlistItem, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return items, nil
}
