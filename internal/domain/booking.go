package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking reserves one room for a customer over a date range. TotalAmount is
// computed once at creation and never recomputed. Status leaves "pending"
// only via a successful payment (-> confirmed) or the admin reset
// (-> cancelled); both terminal states are immutable.
type Booking struct {
	BookingID     string        `gorm:"column:booking_id;primaryKey" json:"booking_id"`
	CustomerID    string        `gorm:"column:customer_id;index" json:"customer_id" validate:"required"`
	RoomNo        string        `gorm:"column:room_no;index" json:"room_no" validate:"required"`
	CheckinDate   *time.Time    `gorm:"column:checkin_date" json:"checkin_date,omitempty"`
	CheckoutDate  *time.Time    `gorm:"column:checkout_date" json:"checkout_date,omitempty"`
	Guests        int           `gorm:"column:no_of_members" json:"guests" validate:"gte=1"`
	Status        BookingStatus `gorm:"column:status;default:pending" json:"status"`
	TotalAmount   float64       `gorm:"column:total_amount" json:"total_amount" validate:"gte=0"`
	ParkingSpotID *string       `gorm:"column:parking_spot_id" json:"parking_spot_id,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Room     *Room     `json:"room,omitempty" gorm:"foreignKey:RoomNo"`
}

func (Booking) TableName() string { return "bookings" }

// BookingService links a booking to one of its attached services.
type BookingService struct {
	BookingID string `gorm:"column:booking_id;primaryKey" json:"booking_id"`
	ServiceID string `gorm:"column:service_id;primaryKey" json:"service_id"`
}

func (BookingService) TableName() string { return "booking_services" }

// BookingStaff links a booking to its optional assigned staff member.
type BookingStaff struct {
	BookingID string `gorm:"column:booking_id;primaryKey" json:"booking_id"`
	StaffID   string `gorm:"column:staff_id;primaryKey" json:"staff_id"`
}

func (BookingStaff) TableName() string { return "booking_staff" }
