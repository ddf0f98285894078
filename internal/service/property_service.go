package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realty/internal/cache"
	"realty/internal/errors"
	"realty/internal/model"
	"realty/internal/policy"
	"realty/internal/repository"
)

const propertyListCacheTTL = 5 * time.Minute

// PropertyInput carries the fields an agent supplies when listing a property.
type PropertyInput struct {
	Title        string
	Description  string
	Price        decimal.Decimal
	Location     string
	PropertyType string
}

// PropertyUpdate carries a partial update. Nil fields keep their
// previous value.
type PropertyUpdate struct {
	Title        *string
	Description  *string
	Price        *decimal.Decimal
	Location     *string
	PropertyType *string
}

// PropertyService handles property listing operations.
type PropertyService interface {
	Create(ctx context.Context, actor policy.Actor, input PropertyInput) (*model.Property, error)
	Get(ctx context.Context, actor policy.Actor, id uint) (*model.Property, error)
	List(ctx context.Context, actor policy.Actor) ([]model.Property, error)
	Update(ctx context.Context, actor policy.Actor, id uint, update PropertyUpdate) (*model.Property, error)
	Delete(ctx context.Context, actor policy.Actor, id uint) error
}

type propertyService struct {
	repo  repository.PropertyRepository
	cache *cache.Client
}

// NewPropertyService creates a new property service.
func NewPropertyService(repo repository.PropertyRepository, cache *cache.Client) PropertyService {
	return &propertyService{
		repo:  repo,
		cache: cache,
	}
}

func listCacheKey(scope policy.PropertyScope) string {
	if scope.OwnedBy != 0 {
		return fmt.Sprintf("properties:agent:%d", scope.OwnedBy)
	}
	return "properties:all"
}

// invalidateListings drops the cached views a changed property may appear in.
func (s *propertyService) invalidateListings(ctx context.Context, agentID uint) {
	_ = s.cache.Delete(ctx, "properties:all")
	_ = s.cache.Delete(ctx, fmt.Sprintf("properties:agent:%d", agentID))
}

// Create lists a new property. Agents only; listings are approved by default.
func (s *propertyService) Create(ctx context.Context, actor policy.Actor, input PropertyInput) (*model.Property, error) {
	if err := policy.CanCreateProperty(actor); err != nil {
		return nil, err
	}

	property := &model.Property{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Location:     input.Location,
		PropertyType: input.PropertyType,
		ListedBy:     actor.ID,
		IsApproved:   true,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.invalidateListings(ctx, actor.ID)
	return property, nil
}

// Get returns a single property. Any authenticated user may view a listing.
func (s *propertyService) Get(ctx context.Context, actor policy.Actor, id uint) (*model.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return property, nil
}

// List returns the actor's view of the listings: agents see their own
// properties, buyers see all of them.
func (s *propertyService) List(ctx context.Context, actor policy.Actor) ([]model.Property, error) {
	scope, err := policy.ListPropertiesScope(actor)
	if err != nil {
		return nil, err
	}

	key := listCacheKey(scope)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Property
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	var properties []model.Property
	if scope.OwnedBy != 0 {
		properties, err = s.repo.ListByAgent(ctx, scope.OwnedBy)
	} else {
		properties, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	if payload, err := json.Marshal(properties); err == nil {
		_ = s.cache.Set(ctx, key, payload, propertyListCacheTTL)
	}

	return properties, nil
}

// Update applies a partial update to a property owned by the actor.
// Only explicitly supplied fields change.
func (s *propertyService) Update(ctx context.Context, actor policy.Actor, id uint, update PropertyUpdate) (*model.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}

	if err := policy.CanModifyProperty(actor, property); err != nil {
		return nil, err
	}

	if update.Title != nil {
		property.Title = *update.Title
	}
	if update.Description != nil {
		property.Description = *update.Description
	}
	if update.Price != nil {
		property.Price = *update.Price
	}
	if update.Location != nil {
		property.Location = *update.Location
	}
	if update.PropertyType != nil {
		property.PropertyType = *update.PropertyType
	}

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}

	s.invalidateListings(ctx, property.ListedBy)
	return property, nil
}

// Delete removes a property owned by the actor.
func (s *propertyService) Delete(ctx context.Context, actor policy.Actor, id uint) error {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPropertyNotFound
		}
		return fmt.Errorf("find property: %w", err)
	}

	if err := policy.CanModifyProperty(actor, property); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete property: %w", err)
	}

	s.invalidateListings(ctx, property.ListedBy)
	return nil
}
