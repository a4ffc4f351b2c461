package membership

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/ids"
	"hotelbooking/internal/repository"
)

var ErrUnknownPlan = errors.New("unknown membership plan")

// Plans is the static membership catalog.
var Plans = []Plan{
	{ID: "M1", Name: "Silver", Price: 49, Perks: []string{"5% off rooms", "Late checkout", "Welcome drink"}},
	{ID: "M2", Name: "Gold", Price: 129, Perks: []string{"10% off rooms", "Free breakfast", "Spa access"}},
	{ID: "M3", Name: "Platinum", Price: 249, Perks: []string{"15% off rooms", "Suite upgrades", "Concierge priority"}},
}

type Service struct {
	memberships *repository.MembershipRepository
}

func NewService(memberships *repository.MembershipRepository) *Service {
	return &Service{memberships: memberships}
}

// Enroll creates a one-year membership of the given plan type.
func (s *Service) Enroll(ctx context.Context, customerID, planType string) (*domain.Membership, error) {
	if !validPlan(planType) {
		return nil, ErrUnknownPlan
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	expire := start.AddDate(1, 0, 0)
	m := &domain.Membership{
		MembershipID: ids.NewMembershipID(),
		CustomerID:   customerID,
		Type:         planType,
		StartDate:    &start,
		ExpireDate:   &expire,
	}
	if err := s.memberships.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func validPlan(planType string) bool {
	for _, p := range Plans {
		if p.Name == planType || p.ID == planType {
			return true
		}
	}
	return false
}
