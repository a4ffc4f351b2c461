package payment

import (
	"context"

	"hotelbooking/internal/domain"
)

// PaymentRepository runs the atomic finalization unit.
type PaymentRepository interface {
	Finalize(ctx context.Context, p *domain.Payment) (*domain.Booking, error)
}

// BookingReader loads the booking whose total the payment must match.
type BookingReader interface {
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
}

// StatusBroadcaster pushes booking confirmations to subscribed clients.
type StatusBroadcaster interface {
	BookingStatusChanged(bookingID string, status domain.BookingStatus)
}
