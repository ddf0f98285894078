package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "realty/internal/errors"
	"realty/internal/model"
	"realty/internal/policy"
)

var (
	actorAgentA  = policy.Actor{ID: 1, Username: "agent-a", Role: model.RoleAgent}
	actorAgentA2 = policy.Actor{ID: 2, Username: "agent-a2", Role: model.RoleAgent}
	actorBuyerB  = policy.Actor{ID: 3, Username: "buyer-b", Role: model.RoleBuyer}
)

func TestPropertyService_Create(t *testing.T) {
	input := PropertyInput{
		Title:    "Sunny flat",
		Price:    decimal.NewFromInt(100000),
		Location: "Riverside",
	}

	t.Run("agent creates approved listing owned by the actor", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Property")).Return(nil)

		svc := NewPropertyService(mockRepo, nil)
		property, err := svc.Create(context.Background(), actorAgentA, input)

		assert.NoError(t, err)
		assert.Equal(t, actorAgentA.ID, property.ListedBy)
		assert.True(t, property.IsApproved)
		assert.Equal(t, "Sunny flat", property.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("buyer is forbidden", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)

		svc := NewPropertyService(mockRepo, nil)
		property, err := svc.Create(context.Background(), actorBuyerB, input)

		assert.Equal(t, apperrors.ErrForbidden, err)
		assert.Nil(t, property)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPropertyService_List(t *testing.T) {
	listings := []model.Property{
		{ID: 10, Title: "Sunny flat", ListedBy: actorAgentA.ID},
		{ID: 11, Title: "Downtown studio", ListedBy: actorAgentA2.ID},
	}

	t.Run("agent sees only own listings", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("ListByAgent", mock.Anything, actorAgentA.ID).Return(listings[:1], nil)

		svc := NewPropertyService(mockRepo, nil)
		properties, err := svc.List(context.Background(), actorAgentA)

		assert.NoError(t, err)
		assert.Len(t, properties, 1)
		assert.Equal(t, actorAgentA.ID, properties[0].ListedBy)
		mockRepo.AssertNotCalled(t, "ListAll", mock.Anything)
	})

	t.Run("buyer sees all listings", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("ListAll", mock.Anything).Return(listings, nil)

		svc := NewPropertyService(mockRepo, nil)
		properties, err := svc.List(context.Background(), actorBuyerB)

		assert.NoError(t, err)
		assert.Len(t, properties, 2)
		mockRepo.AssertNotCalled(t, "ListByAgent", mock.Anything, mock.Anything)
	})
}

func TestPropertyService_Update(t *testing.T) {
	newTitle := "Renovated flat"
	newPrice := decimal.NewFromInt(120000)

	existing := func() *model.Property {
		return &model.Property{
			ID:          10,
			Title:       "Sunny flat",
			Description: "Bright and airy.",
			Price:       decimal.NewFromInt(100000),
			Location:    "Riverside",
			ListedBy:    actorAgentA.ID,
			IsApproved:  true,
		}
	}

	t.Run("owner patches supplied fields only", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Property")).Return(nil)

		svc := NewPropertyService(mockRepo, nil)
		property, err := svc.Update(context.Background(), actorAgentA, 10, PropertyUpdate{
			Title: &newTitle,
			Price: &newPrice,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Renovated flat", property.Title)
		assert.True(t, newPrice.Equal(property.Price))
		// Unsupplied fields retain their previous values.
		assert.Equal(t, "Bright and airy.", property.Description)
		assert.Equal(t, "Riverside", property.Location)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owning agent is forbidden", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(existing(), nil)

		svc := NewPropertyService(mockRepo, nil)
		property, err := svc.Update(context.Background(), actorAgentA2, 10, PropertyUpdate{Title: &newTitle})

		assert.Equal(t, apperrors.ErrForbidden, err)
		assert.Nil(t, property)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("buyer is forbidden", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(existing(), nil)

		svc := NewPropertyService(mockRepo, nil)
		_, err := svc.Update(context.Background(), actorBuyerB, 10, PropertyUpdate{Title: &newTitle})

		assert.Equal(t, apperrors.ErrForbidden, err)
	})

	t.Run("missing property is not found", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPropertyService(mockRepo, nil)
		_, err := svc.Update(context.Background(), actorAgentA, 404, PropertyUpdate{Title: &newTitle})

		assert.Equal(t, apperrors.ErrPropertyNotFound, err)
	})
}

func TestPropertyService_Delete(t *testing.T) {
	existing := &model.Property{ID: 10, ListedBy: actorAgentA.ID}

	t.Run("owner deletes", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(existing, nil)
		mockRepo.On("Delete", mock.Anything, uint(10)).Return(nil)

		svc := NewPropertyService(mockRepo, nil)
		assert.NoError(t, svc.Delete(context.Background(), actorAgentA, 10))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("FindByID", mock.Anything, uint(10)).Return(existing, nil)

		svc := NewPropertyService(mockRepo, nil)
		assert.Equal(t, apperrors.ErrForbidden, svc.Delete(context.Background(), actorBuyerB, 10))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing property is not found", func(t *testing.T) {
		mockRepo := new(MockPropertyRepository)
		mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewPropertyService(mockRepo, nil)
		assert.Equal(t, apperrors.ErrPropertyNotFound, svc.Delete(context.Background(), actorAgentA, 404))
	})
}
