package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).First(&c, "customer_id = ?", customerID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

// GetByEmail returns (nil, nil) when no customer has the email.
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	var c domain.Customer
	tx := r.db.WithContext(ctx).First(&c, "email = ?", email)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CustomerRepository) UpdateProfile(ctx context.Context, customerID string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("customer_id = ?", customerID).
		Updates(fields).Error
}
