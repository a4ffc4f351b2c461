package parking

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type ParkingRepository interface {
	GetSpot(ctx context.Context, spotID string) (*domain.ParkingSpot, error)
	CreateWithSpotClaim(ctx context.Context, pb *domain.ParkingBooking) error
	ListBookingsByCustomer(ctx context.Context, customerID string) ([]repository.ParkingBookingRow, error)
}

type StatusBroadcaster interface {
	SpotStatusChanged(spotID string, status domain.SpotStatus)
}
