package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateWithRoomClaim persists a booking inside a single transaction:
// the room (and optional parking spot) is claimed with a conditional
// UPDATE so that two concurrent attempts on the same available room can
// never both succeed, then the booking row and its service/staff
// attachments are inserted. Any failure rolls the whole unit back and the
// room stays available.
func (r *BookingRepository) CreateWithRoomClaim(ctx context.Context, b *domain.Booking, serviceIDs []string, staffID *string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&domain.Room{}).
			Where("room_no = ? AND status = ?", b.RoomNo, domain.RoomAvailable).
			Update("status", domain.RoomBooked)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			var cnt int64
			if err := tx.Model(&domain.Room{}).Where("room_no = ?", b.RoomNo).Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return ErrRoomNotFound
			}
			return ErrRoomUnavailable
		}

		if b.ParkingSpotID != nil {
			spot := tx.Model(&domain.ParkingSpot{}).
				Where("spot_id = ? AND status = ?", *b.ParkingSpotID, domain.SpotAvailable).
				Update("status", domain.SpotBooked)
			if spot.Error != nil {
				return spot.Error
			}
			if spot.RowsAffected == 0 {
				var cnt int64
				if err := tx.Model(&domain.ParkingSpot{}).Where("spot_id = ?", *b.ParkingSpotID).Count(&cnt).Error; err != nil {
					return err
				}
				if cnt == 0 {
					return ErrSpotNotFound
				}
				return ErrSpotUnavailable
			}
		}

		if err := tx.Create(b).Error; err != nil {
			return mapConstraintError(err)
		}
		for _, sid := range serviceIDs {
			link := domain.BookingService{BookingID: b.BookingID, ServiceID: sid}
			if err := tx.Create(&link).Error; err != nil {
				return mapConstraintError(err)
			}
		}
		if staffID != nil {
			link := domain.BookingStaff{BookingID: b.BookingID, StaffID: *staffID}
			if err := tx.Create(&link).Error; err != nil {
				return mapConstraintError(err)
			}
		}
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, "booking_id = ?", bookingID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) GetServiceIDs(ctx context.Context, bookingID string) ([]string, error) {
	var ids []string
	tx := r.db.WithContext(ctx).
		Model(&domain.BookingService{}).
		Where("booking_id = ?", bookingID).
		Pluck("service_id", &ids)
	return ids, tx.Error
}

// CustomerBookingRow carries the joined room fields the booking list needs.
type CustomerBookingRow struct {
	BookingID    string     `json:"booking_id"`
	RoomNo       string     `json:"room_no"`
	RoomType     string     `json:"room_type"`
	RoomPrice    float64    `json:"room_price"`
	CheckinDate  *time.Time `json:"checkin_date"`
	CheckoutDate *time.Time `json:"checkout_date"`
	Guests       int        `json:"guests"`
	Status       string     `json:"status"`
	TotalAmount  float64    `json:"total_amount"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]CustomerBookingRow, error) {
	var rows []CustomerBookingRow
	q := `
SELECT b.booking_id, b.room_no, r.type AS room_type, r.price AS room_price,
       b.checkin_date, b.checkout_date, b.no_of_members AS guests,
       b.status, b.total_amount, b.created_at
FROM bookings b
JOIN rooms r ON r.room_no = b.room_no
WHERE b.customer_id = ?
ORDER BY b.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, customerID).Scan(&rows)
	return rows, tx.Error
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Customer").
		Order("created_at DESC").
		Find(&bookings)
	return bookings, tx.Error
}

// CancelWithRelease cancels a booking and frees what it holds, in one
// transaction: the booking row goes cancelled, the claimed room goes back
// to available, and so does the parking spot if one was attached. The
// caller is responsible for checking the transition is allowed.
func (r *BookingRepository) CancelWithRelease(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "booking_id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if err := tx.Model(&domain.Booking{}).
			Where("booking_id = ?", bookingID).
			Update("status", domain.BookingCancelled).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Room{}).
			Where("room_no = ?", b.RoomNo).
			Update("status", domain.RoomAvailable).Error; err != nil {
			return err
		}
		if b.ParkingSpotID != nil {
			if err := tx.Model(&domain.ParkingSpot{}).
				Where("spot_id = ?", *b.ParkingSpotID).
				Update("status", domain.SpotAvailable).Error; err != nil {
				return err
			}
		}
		b.Status = domain.BookingCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("booking_id = ?", bookingID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
