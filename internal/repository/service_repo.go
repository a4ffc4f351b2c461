package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) List(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	tx := r.db.WithContext(ctx).Order("service_id").Find(&services)
	return services, tx.Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	var s domain.Service
	tx := r.db.WithContext(ctx).First(&s, "service_id = ?", serviceID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

// FindByIDs returns the services matching ids. Callers compare lengths to
// detect unknown ids.
func (r *ServiceRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var services []domain.Service
	tx := r.db.WithContext(ctx).Where("service_id IN ?", ids).Find(&services)
	return services, tx.Error
}
