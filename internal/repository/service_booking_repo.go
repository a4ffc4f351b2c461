package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type ServiceBookingRepository struct {
	db *gorm.DB
}

func NewServiceBookingRepository(db *gorm.DB) *ServiceBookingRepository {
	return &ServiceBookingRepository{db: db}
}

func (r *ServiceBookingRepository) Create(ctx context.Context, sb *domain.ServiceBooking) error {
	if err := r.db.WithContext(ctx).Create(sb).Error; err != nil {
		return mapConstraintError(err)
	}
	return nil
}

// ServiceBookingRow carries the joined service fields for listings.
type ServiceBookingRow struct {
	ServiceBookingID string  `json:"service_booking_id"`
	ServiceID        string  `json:"service_id"`
	ServiceName      string  `json:"service_name"`
	Category         string  `json:"category"`
	Charges          float64 `json:"charges"`
	Status           string  `json:"status"`
	TotalAmount      float64 `json:"total_amount"`
}

func (r *ServiceBookingRepository) ListByCustomer(ctx context.Context, customerID string) ([]ServiceBookingRow, error) {
	var rows []ServiceBookingRow
	q := `
SELECT sb.service_booking_id, sb.service_id, s.name AS service_name,
       s.category, s.charges, sb.status, sb.total_amount
FROM service_bookings sb
JOIN services s ON s.service_id = sb.service_id
WHERE sb.customer_id = ?
ORDER BY sb.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, customerID).Scan(&rows)
	return rows, tx.Error
}
