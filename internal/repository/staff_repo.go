package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	var staff []domain.Staff
	tx := r.db.WithContext(ctx).Order("staff_id").Find(&staff)
	return staff, tx.Error
}

func (r *StaffRepository) Exists(ctx context.Context, staffID string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.Staff{}).
		Where("staff_id = ?", staffID).
		Count(&cnt)
	return cnt > 0, tx.Error
}
