package domain

import "time"

type CustomerRole string

const (
	RoleClient CustomerRole = "client"
	RoleAdmin  CustomerRole = "admin"
)

type Customer struct {
	CustomerID   string       `gorm:"column:customer_id;primaryKey" json:"customer_id"`
	Name         string       `json:"name" validate:"required"`
	Email        string       `gorm:"uniqueIndex" json:"email" validate:"required,email"`
	PhoneNo      string       `gorm:"column:phone_no" json:"phone_no,omitempty"`
	Street       string       `json:"street,omitempty"`
	City         string       `json:"city,omitempty"`
	Landmark     string       `json:"landmark,omitempty"`
	PasswordHash string       `gorm:"column:password_hash" json:"-"`
	Role         CustomerRole `gorm:"column:role;default:client" json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (Customer) TableName() string { return "customers" }
