package domain

import "time"

type Membership struct {
	MembershipID string     `gorm:"column:membership_id;primaryKey" json:"membership_id"`
	CustomerID   string     `gorm:"column:customer_id;index" json:"customer_id"`
	Type         string     `json:"type"`
	StartDate    *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	ExpireDate   *time.Time `gorm:"column:expire_date" json:"expire_date,omitempty"`
	NoOfBookings int        `gorm:"column:no_of_bookings;default:0" json:"no_of_bookings"`
}

func (Membership) TableName() string { return "memberships" }
