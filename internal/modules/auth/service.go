package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/ids"
)

type Service struct {
	customers CustomerRepository
	tokens    TokenIssuer
}

func NewService(customers CustomerRepository, tokens TokenIssuer) *Service {
	return &Service{customers: customers, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	existing, err := s.customers.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c := &domain.Customer{
		CustomerID:   ids.NewCustomerID(),
		Name:         req.Name,
		Email:        req.Email,
		PhoneNo:      req.PhoneNo,
		Street:       req.Street,
		City:         req.City,
		Landmark:     req.Landmark,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(c.CustomerID, c.Email, string(c.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{CustomerID: c.CustomerID, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	c, err := s.customers.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(c.CustomerID, c.Email, string(c.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResponse{CustomerID: c.CustomerID, Token: token}, nil
}
