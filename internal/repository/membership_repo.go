package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapConstraintError(err)
	}
	return nil
}

func (r *MembershipRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.Membership, error) {
	var memberships []domain.Membership
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Find(&memberships)
	return memberships, tx.Error
}
