package domain

// Service is a flat-charge hotel service (dining, spa, laundry...).
// Read-only input to pricing; never mutated by the booking flow.
type Service struct {
	ServiceID   string  `gorm:"column:service_id;primaryKey" json:"service_id"`
	Name        string  `json:"name" validate:"required"`
	Charges     float64 `json:"charges" validate:"gte=0"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `gorm:"column:image_url" json:"image_url,omitempty"`
}

func (Service) TableName() string { return "services" }
