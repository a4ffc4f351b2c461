package domain

import "time"

type SpotStatus string

const (
	SpotAvailable SpotStatus = "available"
	SpotBooked    SpotStatus = "booked"
)

type ParkingSpot struct {
	SpotID   string     `gorm:"column:spot_id;primaryKey" json:"spot_id"`
	Location string     `json:"location,omitempty"`
	Type     string     `json:"type,omitempty"`
	Status   SpotStatus `gorm:"column:status;default:available" json:"status"`
	Price    float64    `json:"price" validate:"gte=0"`
}

func (ParkingSpot) TableName() string { return "parking_spots" }

type ParkingBooking struct {
	ParkingBookingID string        `gorm:"column:parking_booking_id;primaryKey" json:"parking_booking_id"`
	CustomerID       string        `gorm:"column:customer_id;index" json:"customer_id"`
	VehicleNo        string        `gorm:"column:vehicle_no" json:"vehicle_no,omitempty"`
	SpotID           string        `gorm:"column:parking_spot" json:"parking_spot"`
	BookingDate      *time.Time    `gorm:"column:booking_date" json:"booking_date,omitempty"`
	StartTime        string        `gorm:"column:start_time" json:"start_time,omitempty"`
	EndTime          string        `gorm:"column:end_time" json:"end_time,omitempty"`
	Status           BookingStatus `gorm:"column:status;default:pending" json:"status"`
	TotalAmount      float64       `gorm:"column:total_amount" json:"total_amount"`
	CreatedAt        time.Time     `json:"created_at"`
}

func (ParkingBooking) TableName() string { return "parking_bookings" }
