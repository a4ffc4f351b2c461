package booking

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/ids"
	"hotelbooking/internal/pkg/validator"
	"hotelbooking/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	services ServiceCatalog
	staff    StaffDirectory
	parking  ParkingLot
	events   StatusBroadcaster
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	services ServiceCatalog,
	staff StaffDirectory,
	parking ParkingLot,
	events StatusBroadcaster,
) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		services: services,
		staff:    staff,
		parking:  parking,
		events:   events,
	}
}

// CreateBooking validates the request, computes the total from current
// catalog prices and runs the atomic room-claim transaction. The room
// status flips only when the whole unit commits.
func (s *Service) CreateBooking(ctx context.Context, customerID string, req CreateBookingRequest) (*domain.Booking, error) {
	checkin, err := parseDate(req.CheckinDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkout, err := parseDate(req.CheckoutDate)
	if err != nil {
		return nil, ErrValidation
	}
	if checkin != nil && checkout != nil && !checkout.After(*checkin) {
		return nil, ErrValidation
	}
	if req.Guests < 1 {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByNo(ctx, req.RoomNo)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	// Fast-path check; the transaction re-verifies under the claim.
	if room.Status != domain.RoomAvailable {
		return nil, ErrRoomUnavailable
	}

	// Repeated ids collapse to one attachment, charged once. The
	// booking_services primary key would reject the duplicate row anyway.
	serviceIDs := dedupe(req.ServiceIDs)
	charges, err := s.resolveServiceCharges(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	if req.StaffID != nil {
		ok, err := s.staff.Exists(ctx, *req.StaffID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrStaffNotFound
		}
	}

	var parkingFee float64
	if req.ParkingSpotID != nil {
		spot, err := s.parking.GetSpot(ctx, *req.ParkingSpotID)
		if err != nil {
			return nil, ErrSpotNotFound
		}
		parkingFee = spot.Price
	}

	nights := Nights(checkin, checkout)
	total := ComputeTotal(room.Price, nights, charges, parkingFee)

	b := &domain.Booking{
		BookingID:     ids.NewBookingID(),
		CustomerID:    customerID,
		RoomNo:        req.RoomNo,
		CheckinDate:   checkin,
		CheckoutDate:  checkout,
		Guests:        req.Guests,
		Status:        domain.BookingPending,
		TotalAmount:   total,
		ParkingSpotID: req.ParkingSpotID,
	}
	if fields := validator.Validate(b); fields != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.CreateWithRoomClaim(ctx, b, serviceIDs, req.StaffID); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, repository.ErrRoomUnavailable):
			return nil, ErrRoomUnavailable
		case errors.Is(err, repository.ErrSpotNotFound):
			return nil, ErrSpotNotFound
		case errors.Is(err, repository.ErrSpotUnavailable):
			return nil, ErrSpotUnavailable
		}
		return nil, err
	}

	if s.events != nil {
		s.events.RoomStatusChanged(b.RoomNo, domain.RoomBooked)
		if b.ParkingSpotID != nil {
			s.events.SpotStatusChanged(*b.ParkingSpotID, domain.SpotBooked)
		}
	}

	return b, nil
}

func (s *Service) resolveServiceCharges(ctx context.Context, serviceIDs []string) ([]float64, error) {
	if len(serviceIDs) == 0 {
		return nil, nil
	}
	services, err := s.services.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(serviceIDs) {
		return nil, ErrServiceNotFound
	}
	charges := make([]float64, 0, len(services))
	for _, svc := range services {
		charges = append(charges, svc.Charges)
	}
	return charges, nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, []string, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, err
	}
	serviceIDs, err := s.bookings.GetServiceIDs(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	return b, serviceIDs, nil
}

func (s *Service) GetMyBookings(ctx context.Context, customerID string) ([]repository.CustomerBookingRow, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
