package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type ParkingRepository struct {
	db *gorm.DB
}

func NewParkingRepository(db *gorm.DB) *ParkingRepository {
	return &ParkingRepository{db: db}
}

func (r *ParkingRepository) ListSpots(ctx context.Context) ([]domain.ParkingSpot, error) {
	var spots []domain.ParkingSpot
	tx := r.db.WithContext(ctx).Order("spot_id").Find(&spots)
	return spots, tx.Error
}

func (r *ParkingRepository) GetSpot(ctx context.Context, spotID string) (*domain.ParkingSpot, error) {
	var spot domain.ParkingSpot
	tx := r.db.WithContext(ctx).First(&spot, "spot_id = ?", spotID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &spot, nil
}

// CreateWithSpotClaim books a parking spot under the same claim invariant as
// rooms: the conditional UPDATE and the booking insert commit together or
// not at all.
func (r *ParkingRepository) CreateWithSpotClaim(ctx context.Context, pb *domain.ParkingBooking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&domain.ParkingSpot{}).
			Where("spot_id = ? AND status = ?", pb.SpotID, domain.SpotAvailable).
			Update("status", domain.SpotBooked)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			var cnt int64
			if err := tx.Model(&domain.ParkingSpot{}).Where("spot_id = ?", pb.SpotID).Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return ErrSpotNotFound
			}
			return ErrSpotUnavailable
		}

		if err := tx.Create(pb).Error; err != nil {
			return mapConstraintError(err)
		}
		return nil
	})
}

// ParkingBookingRow carries the joined spot fields for listings.
type ParkingBookingRow struct {
	ParkingBookingID string  `json:"parking_booking_id"`
	SpotID           string  `json:"parking_spot"`
	Location         string  `json:"location"`
	SpotType         string  `json:"spot_type"`
	VehicleNo        string  `json:"vehicle_no"`
	Status           string  `json:"status"`
	TotalAmount      float64 `json:"total_amount"`
}

func (r *ParkingRepository) ListBookingsByCustomer(ctx context.Context, customerID string) ([]ParkingBookingRow, error) {
	var rows []ParkingBookingRow
	q := `
SELECT pb.parking_booking_id, pb.parking_spot AS spot_id, ps.location,
       ps.type AS spot_type, pb.vehicle_no, pb.status, pb.total_amount
FROM parking_bookings pb
JOIN parking_spots ps ON ps.spot_id = pb.parking_spot
WHERE pb.customer_id = ?
ORDER BY pb.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, customerID).Scan(&rows)
	return rows, tx.Error
}
