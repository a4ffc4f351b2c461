package domain

import "time"

// ServiceBooking is a standalone reservation of a single service, detached
// from any room booking.
type ServiceBooking struct {
	ServiceBookingID string        `gorm:"column:service_booking_id;primaryKey" json:"service_booking_id"`
	CustomerID       string        `gorm:"column:customer_id;index" json:"customer_id"`
	ServiceID        string        `gorm:"column:service_id" json:"service_id"`
	BookingDate      *time.Time    `gorm:"column:booking_date" json:"booking_date,omitempty"`
	BookingTime      string        `gorm:"column:booking_time" json:"booking_time,omitempty"`
	Status           BookingStatus `gorm:"column:status;default:pending" json:"status"`
	TotalAmount      float64       `gorm:"column:total_amount" json:"total_amount"`
	CreatedAt        time.Time     `json:"created_at"`
}

func (ServiceBooking) TableName() string { return "service_bookings" }
