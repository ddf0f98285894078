package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "realty/internal/errors"
	"realty/internal/model"
)

func TestWishlistService_Add(t *testing.T) {
	property := &model.Property{ID: 10, ListedBy: actorAgentA.ID}

	t.Run("saves existing property", func(t *testing.T) {
		mockWishRepo := new(MockWishlistRepository)
		mockPropRepo := new(MockPropertyRepository)
		mockPropRepo.On("FindByID", mock.Anything, uint(10)).Return(property, nil)
		mockWishRepo.On("Find", mock.Anything, actorBuyerB.ID, uint(10)).Return(nil, gorm.ErrRecordNotFound)
		mockWishRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.WishlistItem")).Return(nil)

		svc := NewWishlistService(mockWishRepo, mockPropRepo)
		item, err := svc.Add(context.Background(), actorBuyerB, 10)

		assert.NoError(t, err)
		assert.Equal(t, actorBuyerB.ID, item.UserID)
		assert.Equal(t, uint(10), item.PropertyID)
		mockWishRepo.AssertExpectations(t)
	})

	t.Run("missing property is not found", func(t *testing.T) {
		mockWishRepo := new(MockWishlistRepository)
		mockPropRepo := new(MockPropertyRepository)
		mockPropRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewWishlistService(mockWishRepo, mockPropRepo)
		_, err := svc.Add(context.Background(), actorBuyerB, 404)

		assert.Equal(t, apperrors.ErrPropertyNotFound, err)
		mockWishRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate pair is rejected", func(t *testing.T) {
		mockWishRepo := new(MockWishlistRepository)
		mockPropRepo := new(MockPropertyRepository)
		mockPropRepo.On("FindByID", mock.Anything, uint(10)).Return(property, nil)
		mockWishRepo.On("Find", mock.Anything, actorBuyerB.ID, uint(10)).Return(&model.WishlistItem{
			UserID:     actorBuyerB.ID,
			PropertyID: 10,
		}, nil)

		svc := NewWishlistService(mockWishRepo, mockPropRepo)
		_, err := svc.Add(context.Background(), actorBuyerB, 10)

		assert.Equal(t, apperrors.ErrAlreadyInWishlist, err)
		mockWishRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestWishlistService_Remove(t *testing.T) {
	t.Run("removes own item", func(t *testing.T) {
		mockWishRepo := new(MockWishlistRepository)
		mockWishRepo.On("Find", mock.Anything, actorBuyerB.ID, uint(10)).Return(&model.WishlistItem{
			UserID:     actorBuyerB.ID,
			PropertyID: 10,
		}, nil)
		mockWishRepo.On("Delete", mock.Anything, actorBuyerB.ID, uint(10)).Return(nil)

		svc := NewWishlistService(mockWishRepo, new(MockPropertyRepository))
		assert.NoError(t, svc.Remove(context.Background(), actorBuyerB, 10))
		mockWishRepo.AssertExpectations(t)
	})

	t.Run("absent item is not found, not success", func(t *testing.T) {
		mockWishRepo := new(MockWishlistRepository)
		mockWishRepo.On("Find", mock.Anything, actorBuyerB.ID, uint(10)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewWishlistService(mockWishRepo, new(MockPropertyRepository))
		assert.Equal(t, apperrors.ErrWishlistItemNotFound, svc.Remove(context.Background(), actorBuyerB, 10))
		mockWishRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestWishlistService_List(t *testing.T) {
	mockWishRepo := new(MockWishlistRepository)
	mockWishRepo.On("ListByUser", mock.Anything, actorBuyerB.ID).Return([]model.WishlistItem{
		{UserID: actorBuyerB.ID, PropertyID: 10, Property: model.Property{ID: 10, Title: "Sunny flat"}},
	}, nil)

	svc := NewWishlistService(mockWishRepo, new(MockPropertyRepository))
	items, err := svc.List(context.Background(), actorBuyerB)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	// Items come back with their property resolved for display.
	assert.Equal(t, "Sunny flat", items[0].Property.Title)
}
