package domain

import "time"

type Staff struct {
	StaffID      string     `gorm:"column:staff_id;primaryKey" json:"staff_id"`
	Name         string     `json:"name" validate:"required"`
	ContactNo    string     `gorm:"column:contact_no" json:"contact_no,omitempty"`
	Email        string     `json:"email,omitempty"`
	Salary       float64    `json:"salary,omitempty"`
	HireDate     *time.Time `gorm:"column:hire_date" json:"hire_date,omitempty"`
	SupervisorID *string    `gorm:"column:supervisor_id" json:"supervisor_id,omitempty"`
	Role         string     `json:"role,omitempty"`
	Skill        string     `json:"skill,omitempty"`
	ImageURL     string     `gorm:"column:image_url" json:"image_url,omitempty"`
}

func (Staff) TableName() string { return "staff" }
