package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByNo(ctx context.Context, roomNo string) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).First(&room, "room_no = ?", roomNo)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).Order("room_no").Find(&rooms)
	return rooms, tx.Error
}

func (r *RoomRepository) ListAvailable(ctx context.Context, minCapacity int) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Where("status = ?", domain.RoomAvailable)
	if minCapacity > 0 {
		q = q.Where("capacity >= ?", minCapacity)
	}
	var rooms []domain.Room
	tx := q.Order("room_no").Find(&rooms)
	return rooms, tx.Error
}

// CountConflicts returns how many pending/confirmed bookings overlap the
// given date range for a room. Ranges are half-open: [checkin, checkout).
func (r *RoomRepository) CountConflicts(ctx context.Context, roomNo string, checkin, checkout time.Time) (int64, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM bookings
WHERE room_no = ?
  AND status IN ('pending', 'confirmed')
  AND checkin_date < ?
  AND checkout_date > ?
`
	tx := r.db.WithContext(ctx).Raw(q, roomNo, checkout, checkin).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// ResetAll cancels every pending/confirmed booking and marks every room
// available, in one transaction. Returns rooms updated, total rooms and the
// available count after the reset.
func (r *RoomRepository) ResetAll(ctx context.Context) (updated, total, available int64, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if res := tx.Model(&domain.Booking{}).
			Where("status IN ?", []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
			Update("status", domain.BookingCancelled); res.Error != nil {
			return res.Error
		}

		res := tx.Model(&domain.Room{}).
			Where("status <> ?", domain.RoomAvailable).
			Update("status", domain.RoomAvailable)
		if res.Error != nil {
			return res.Error
		}
		updated = res.RowsAffected

		if err := tx.Model(&domain.Room{}).Count(&total).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Room{}).
			Where("status = ?", domain.RoomAvailable).
			Count(&available).Error
	})
	return updated, total, available, err
}
