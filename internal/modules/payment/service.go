package payment

import (
	"context"
	"errors"
	"math"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/ids"
	"hotelbooking/internal/repository"
)

type Service struct {
	payments PaymentRepository
	bookings BookingReader
	events   StatusBroadcaster
}

func NewService(payments PaymentRepository, bookings BookingReader, events StatusBroadcaster) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		events:   events,
	}
}

// FinalizePayment records a payment and confirms the booking atomically.
// The amount must equal the total fixed at booking creation; confirming
// never changes that total.
func (s *Service) FinalizePayment(ctx context.Context, req CreatePaymentRequest) (*domain.Payment, *domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, err
	}

	if !amountEqual(req.Amount, b.TotalAmount) {
		return nil, nil, ErrAmountMismatch
	}

	p := &domain.Payment{
		PaymentID: ids.NewPaymentID(),
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    domain.PaymentCompleted,
	}

	confirmed, err := s.payments.Finalize(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, nil, ErrBookingNotFound
		}
		return nil, nil, err
	}

	if s.events != nil {
		s.events.BookingStatusChanged(confirmed.BookingID, domain.BookingConfirmed)
	}

	return p, confirmed, nil
}

// amountEqual compares in cents; float equality on currency is a trap.
func amountEqual(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}
