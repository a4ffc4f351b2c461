package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Finalize records the payment and confirms its booking atomically: the
// payment row is inserted, the booking flips to confirmed and the room's
// booked status is re-asserted in case an external reset slipped in between
// booking and payment. Returns the confirmed booking.
func (r *PaymentRepository) Finalize(ctx context.Context, p *domain.Payment) (*domain.Booking, error) {
	var booking domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, "booking_id = ?", p.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := tx.Create(p).Error; err != nil {
			return mapConstraintError(err)
		}

		if err := tx.Model(&domain.Booking{}).
			Where("booking_id = ?", p.BookingID).
			Update("status", domain.BookingConfirmed).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.Room{}).
			Where("room_no = ?", booking.RoomNo).
			Update("status", domain.RoomBooked).Error; err != nil {
			return err
		}

		booking.Status = domain.BookingConfirmed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	var p domain.Payment
	tx := r.db.WithContext(ctx).First(&p, "payment_id = ?", paymentID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, bookingID string) ([]domain.Payment, error) {
	var payments []domain.Payment
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at").
		Find(&payments)
	return payments, tx.Error
}
