package admin

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type Service struct {
	rooms    RoomResetter
	bookings BookingAdmin
	events   StatusBroadcaster
}

func NewService(rooms RoomResetter, bookings BookingAdmin, events StatusBroadcaster) *Service {
	return &Service{
		rooms:    rooms,
		bookings: bookings,
		events:   events,
	}
}

// ResetAllRooms cancels every outstanding booking and frees every room in
// one transaction. Privileged callers only; the route is role-gated.
func (s *Service) ResetAllRooms(ctx context.Context) (*ResetRoomsResponse, error) {
	updated, total, available, err := s.rooms.ResetAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.RoomsReset()
	}
	return &ResetRoomsResponse{
		RoomsUpdated:   updated,
		TotalRooms:     total,
		AvailableRooms: available,
	}, nil
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

// UpdateBookingStatus applies a single manual transition. Terminal states
// stay immutable: only pending->confirmed, pending->cancelled and
// confirmed->cancelled are allowed.
func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	allowed := (b.Status == domain.BookingPending && (newStatus == domain.BookingConfirmed || newStatus == domain.BookingCancelled)) ||
		(b.Status == domain.BookingConfirmed && newStatus == domain.BookingCancelled)
	if !allowed {
		return nil, ErrInvalidStatusTransition
	}

	// Cancelling gives the room (and any parking spot) back; a plain
	// status update would leave them booked with nothing holding them.
	if newStatus == domain.BookingCancelled {
		cancelled, err := s.bookings.CancelWithRelease(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if s.events != nil {
			s.events.RoomStatusChanged(cancelled.RoomNo, domain.RoomAvailable)
			if cancelled.ParkingSpotID != nil {
				s.events.SpotStatusChanged(*cancelled.ParkingSpotID, domain.SpotAvailable)
			}
		}
		return cancelled, nil
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}
