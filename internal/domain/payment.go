package domain

import "time"

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
)

// Payment records money taken against a booking. Created only by the payment
// finalizer, never mutated afterwards.
type Payment struct {
	PaymentID string        `gorm:"column:payment_id;primaryKey" json:"payment_id"`
	BookingID string        `gorm:"column:booking_id;index;not null" json:"booking_id"`
	Amount    float64       `json:"amount"`
	Method    string        `gorm:"column:mode" json:"mode"`
	Status    PaymentStatus `gorm:"column:status;default:completed" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
