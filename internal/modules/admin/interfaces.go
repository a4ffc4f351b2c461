package admin

import (
	"context"

	"hotelbooking/internal/domain"
)

// RoomResetter runs the bulk reset transaction.
type RoomResetter interface {
	ResetAll(ctx context.Context) (updated, total, available int64, err error)
}

// BookingAdmin exposes the booking operations reserved for privileged callers.
type BookingAdmin interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error
	CancelWithRelease(ctx context.Context, bookingID string) (*domain.Booking, error)
}

// StatusBroadcaster notifies subscribers about freed inventory.
type StatusBroadcaster interface {
	RoomsReset()
	RoomStatusChanged(roomNo string, status domain.RoomStatus)
	SpotStatusChanged(spotID string, status domain.SpotStatus)
}
