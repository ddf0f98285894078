package repository

import (
	"context"

	"gorm.io/gorm"

	"realty/internal/model"
)

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Application, error)
	ListByApplicant(ctx context.Context, userID uint) ([]model.Application, error)
	ListByPropertyOwner(ctx context.Context, agentID uint) ([]model.Application, error)
	// TransitionStatus moves an application from one status to another in a
	// single conditional update. It reports false when the application was
	// not in the expected status, so concurrent decisions serialize on the
	// store and only one transition wins.
	TransitionStatus(ctx context.Context, id uint, from, to model.ApplicationStatus) (bool, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Application{}, id).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uint) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).First(&application, id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, userID uint) ([]model.Application, error) {
	var applications []model.Application
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListByPropertyOwner(ctx context.Context, agentID uint) ([]model.Application, error) {
	var applications []model.Application
	sub := r.db.Model(&model.Property{}).Select("id").Where("listed_by = ?", agentID)
	if err := r.db.WithContext(ctx).Preload("Property").
		Where("property_id IN (?)", sub).Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) TransitionStatus(ctx context.Context, id uint, from, to model.ApplicationStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
