package servicebooking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/ids"
	"hotelbooking/internal/repository"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrServiceNotFound = errors.New("service not found")
)

const dateLayout = "2006-01-02"

type Service struct {
	serviceBookings *repository.ServiceBookingRepository
	services        *repository.ServiceRepository
}

func NewService(serviceBookings *repository.ServiceBookingRepository, services *repository.ServiceRepository) *Service {
	return &Service{serviceBookings: serviceBookings, services: services}
}

// CreateBooking books a single service; the total is the service's flat
// charge at booking time.
func (s *Service) CreateBooking(ctx context.Context, customerID string, req CreateServiceBookingRequest) (*domain.ServiceBooking, error) {
	var bookingDate *time.Time
	if req.BookingDate != "" {
		t, err := time.Parse(dateLayout, req.BookingDate)
		if err != nil {
			return nil, ErrValidation
		}
		bookingDate = &t
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	sb := &domain.ServiceBooking{
		ServiceBookingID: ids.NewServiceBookingID(),
		CustomerID:       customerID,
		ServiceID:        svc.ServiceID,
		BookingDate:      bookingDate,
		BookingTime:      req.BookingTime,
		Status:           domain.BookingPending,
		TotalAmount:      svc.Charges,
	}
	if err := s.serviceBookings.Create(ctx, sb); err != nil {
		return nil, err
	}
	return sb, nil
}

func (s *Service) GetMyBookings(ctx context.Context, customerID string) ([]repository.ServiceBookingRow, error) {
	return s.serviceBookings.ListByCustomer(ctx, customerID)
}
