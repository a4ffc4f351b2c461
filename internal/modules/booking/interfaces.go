package booking

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

// BookingRepository is the transactional store for bookings.
type BookingRepository interface {
	CreateWithRoomClaim(ctx context.Context, b *domain.Booking, serviceIDs []string, staffID *string) error
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	GetServiceIDs(ctx context.Context, bookingID string) ([]string, error)
	ListByCustomer(ctx context.Context, customerID string) ([]repository.CustomerBookingRow, error)
}

// RoomRepository exposes the room lookups booking needs.
type RoomRepository interface {
	GetByNo(ctx context.Context, roomNo string) (*domain.Room, error)
}

// ServiceCatalog resolves service charges at booking time.
type ServiceCatalog interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Service, error)
}

// StaffDirectory verifies staff assignments.
type StaffDirectory interface {
	Exists(ctx context.Context, staffID string) (bool, error)
}

// ParkingLot resolves parking fees at booking time.
type ParkingLot interface {
	GetSpot(ctx context.Context, spotID string) (*domain.ParkingSpot, error)
}

// StatusBroadcaster pushes status transitions to subscribed clients.
// Best-effort: implementations must never fail the booking.
type StatusBroadcaster interface {
	RoomStatusChanged(roomNo string, status domain.RoomStatus)
	SpotStatusChanged(spotID string, status domain.SpotStatus)
}
