package auth

import (
	"context"

	"hotelbooking/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
}

type TokenIssuer interface {
	GenerateToken(customerID, email, role string) (string, error)
}
