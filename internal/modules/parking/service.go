package parking

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/ids"
	"hotelbooking/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	parking ParkingRepository
	events  StatusBroadcaster
}

func NewService(parking ParkingRepository, events StatusBroadcaster) *Service {
	return &Service{parking: parking, events: events}
}

// CreateBooking claims a parking spot under the same check-then-set
// invariant as rooms: two concurrent attempts on one available spot cannot
// both succeed.
func (s *Service) CreateBooking(ctx context.Context, customerID string, req CreateParkingBookingRequest) (*domain.ParkingBooking, error) {
	var bookingDate *time.Time
	if req.BookingDate != "" {
		t, err := time.Parse(dateLayout, req.BookingDate)
		if err != nil {
			return nil, ErrValidation
		}
		bookingDate = &t
	}

	spot, err := s.parking.GetSpot(ctx, req.SpotID)
	if err != nil {
		return nil, ErrSpotNotFound
	}

	pb := &domain.ParkingBooking{
		ParkingBookingID: ids.NewParkingBookingID(),
		CustomerID:       customerID,
		VehicleNo:        req.VehicleNo,
		SpotID:           req.SpotID,
		BookingDate:      bookingDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Status:           domain.BookingPending,
		TotalAmount:      spot.Price,
	}

	if err := s.parking.CreateWithSpotClaim(ctx, pb); err != nil {
		switch {
		case errors.Is(err, repository.ErrSpotNotFound):
			return nil, ErrSpotNotFound
		case errors.Is(err, repository.ErrSpotUnavailable):
			return nil, ErrSpotUnavailable
		}
		return nil, err
	}

	if s.events != nil {
		s.events.SpotStatusChanged(pb.SpotID, domain.SpotBooked)
	}

	return pb, nil
}

func (s *Service) GetMyBookings(ctx context.Context, customerID string) ([]repository.ParkingBookingRow, error) {
	return s.parking.ListBookingsByCustomer(ctx, customerID)
}
