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

// ApplicationService handles the application lifecycle: a buyer applies
// for a property, the owning agent approves or rejects, and the
// applicant may withdraw at any point.
type ApplicationService interface {
	Apply(ctx context.Context, actor policy.Actor, propertyID uint) (*model.Application, error)
	List(ctx context.Context, actor policy.Actor) ([]model.Application, error)
	Decide(ctx context.Context, actor policy.Actor, id uint, status model.ApplicationStatus) (*model.Application, error)
	Delete(ctx context.Context, actor policy.Actor, id uint) error
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	propertyRepo    repository.PropertyRepository
}

// NewApplicationService creates a new application service.
func NewApplicationService(applicationRepo repository.ApplicationRepository, propertyRepo repository.PropertyRepository) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		propertyRepo:    propertyRepo,
	}
}

// Apply creates a pending application for an existing property.
func (s *applicationService) Apply(ctx context.Context, actor policy.Actor, propertyID uint) (*model.Application, error) {
	if err := policy.CanCreateApplication(actor); err != nil {
		return nil, err
	}

	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}

	application := &model.Application{
		UserID:     actor.ID,
		PropertyID: propertyID,
		Status:     model.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	return application, nil
}

// List returns the actor's view of applications: buyers see their own,
// agents see the applications targeting properties they listed.
func (s *applicationService) List(ctx context.Context, actor policy.Actor) ([]model.Application, error) {
	scope, err := policy.ListApplicationsScope(actor)
	if err != nil {
		return nil, err
	}

	var applications []model.Application
	if scope.ApplicantID != 0 {
		applications, err = s.applicationRepo.ListByApplicant(ctx, scope.ApplicantID)
	} else {
		applications, err = s.applicationRepo.ListByPropertyOwner(ctx, scope.PropertyOwnerID)
	}
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	return applications, nil
}

// Decide transitions a pending application to approved or rejected.
// Only the agent owning the referenced property may decide, and a
// decided application never changes again: the conditional update in
// the store lets exactly one concurrent decision win.
func (s *applicationService) Decide(ctx context.Context, actor policy.Actor, id uint, status model.ApplicationStatus) (*model.Application, error) {
	if !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}

	property, err := s.propertyRepo.FindByID(ctx, application.PropertyID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}

	if err := policy.CanDecideApplication(actor, property); err != nil {
		return nil, err
	}

	if application.Status.Terminal() {
		return nil, errors.ErrApplicationDecided
	}

	moved, err := s.applicationRepo.TransitionStatus(ctx, id, model.ApplicationStatusPending, status)
	if err != nil {
		return nil, fmt.Errorf("transition application: %w", err)
	}
	if !moved {
		// Lost the race to another decision.
		return nil, errors.ErrApplicationDecided
	}

	application.Status = status
	return application, nil
}

// Delete removes an application. Only the original applicant may
// delete, regardless of status.
func (s *applicationService) Delete(ctx context.Context, actor policy.Actor, id uint) error {
	application, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrApplicationNotFound
		}
		return fmt.Errorf("find application: %w", err)
	}

	if err := policy.CanDeleteApplication(actor, application); err != nil {
		return err
	}

	if err := s.applicationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}

	return nil
}
