package domain

import "time"

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomBooked    RoomStatus = "booked"
)

type Room struct {
	RoomNo    string     `gorm:"column:room_no;primaryKey" json:"room_no"`
	HotelID   string     `gorm:"column:hotel_id" json:"hotel_id,omitempty"`
	Status    RoomStatus `gorm:"column:status;default:available" json:"status"`
	Price     float64    `json:"price" validate:"gte=0"`
	Capacity  int        `json:"capacity" validate:"gt=0"`
	Type      string     `json:"type"`
	Rating    float64    `json:"rating,omitempty"`
	Location  string     `json:"location,omitempty"`
	ImageURL  string     `gorm:"column:image_url" json:"image_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }
